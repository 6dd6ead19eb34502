package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"gorm.io/gorm"

	backoffice "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/backoffice/store"
	"kasira.com/kasira/core"
	"kasira.com/kasira/core/models"
	"kasira.com/kasira/utils"
	"kasira.com/kasira/web/common"
)

// LocationDigest is one schema's closing summary for the digest date.
type LocationDigest struct {
	Location   string `json:"location"`
	Date       string `json:"date"`
	Shifts     int    `json:"shifts"`
	Closed     int    `json:"closed"`
	Incomplete int    `json:"incomplete"`
	Material   int    `json:"material"`

	NetHandover int64 `json:"netHandover"`
	Variance    int64 `json:"variance"`
}

// BuildDigest summarizes one location's shifts for the given business
// date. Open shifts count but contribute no settled figures.
func BuildDigest(ctx context.Context, dm *core.DatabaseManager, schema string, date time.Time) (*LocationDigest, error) {
	digest := &LocationDigest{
		Location: schema,
		Date:     utils.BusinessDate(date),
	}

	if err := dm.Exec(ctx, schema, func(db *gorm.DB) error {
		shifts, err := store.New(db).ShiftsByDateRange(ctx, date, date, "")
		if err != nil {
			return err
		}

		for i := range shifts {
			shift := shifts[i]
			digest.Shifts++

			u := backoffice.BuildUnifiedClosing(&shift, shift.ClosingMeta)
			if !u.IsComplete() {
				digest.Incomplete++
			}
			if shift.Status != models.ShiftStatusClosed {
				continue
			}
			digest.Closed++

			summary := u.Summarize(backoffice.ViewAll)
			digest.NetHandover += summary.NetHandover
			digest.Variance += summary.Variance
			if summary.MaterialVariance {
				digest.Material++
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return digest, nil
}

// RenderDigest formats the digest as the plain-text email body.
func RenderDigest(date string, digests []*LocationDigest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily closing digest for %s\n\n", date)

	for _, d := range digests {
		fmt.Fprintf(&b, "%s\n", d.Location)
		fmt.Fprintf(&b, "  shifts: %d (%d closed, %d incomplete)\n", d.Shifts, d.Closed, d.Incomplete)
		fmt.Fprintf(&b, "  net handover: %s\n", common.FormatCurrency(d.NetHandover))
		fmt.Fprintf(&b, "  variance: %s", common.FormatCurrency(d.Variance))
		if d.Material > 0 {
			fmt.Fprintf(&b, " (%d material)", d.Material)
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

func SendDigestEmail(ctx context.Context, from string, to []string, subject, body string) error {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	client := ses.NewFromConfig(cfg)

	res, err := client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("[INFO] digest email sent: %s\n", *res.MessageId)
	return nil
}
