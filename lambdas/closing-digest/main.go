package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"kasira.com/kasira/core"
	"kasira.com/kasira/infrastructure/communication"
	"kasira.com/kasira/utils"
	"kasira.com/kasira/web/common"
)

// DigestEvent drives one run. Date defaults to yesterday (store time);
// an empty Databases list means every location schema on the server.
type DigestEvent struct {
	Date      string   `json:"date"`
	Databases []string `json:"databases"`
	DryRun    bool     `json:"dryRun"`
}

func HandleRequest(ctx context.Context, event DigestEvent) ([]*LocationDigest, error) {
	// The query window must open at store-time midnight so early-morning
	// shifts stay in the digest date's bucket.
	date := utils.BusinessDayStart(utils.BusinessDate(utils.JakartaNow().Add(-24 * time.Hour)))
	if event.Date != "" {
		parsed, err := utils.ParseISOTime(event.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", event.Date, err)
		}
		date = utils.BusinessDayStart(utils.BusinessDate(*parsed))
	}

	dsn := os.Getenv("DSN")
	dm, err := core.New(dsn, 5)
	if err != nil {
		return nil, err
	}
	defer dm.Close()

	schemas := event.Databases
	if len(schemas) == 0 {
		schemas, err = dm.GetAllDatabases(ctx)
		if err != nil {
			return nil, err
		}
	}

	var digests []*LocationDigest
	for _, schema := range schemas {
		digest, err := BuildDigest(ctx, dm, schema, date)
		if err != nil {
			fmt.Printf("[ERROR] digest for %s failed: %v\n", schema, err)
			continue
		}
		digests = append(digests, digest)
	}

	if event.DryRun {
		return digests, nil
	}

	dateStr := utils.BusinessDate(date)
	body := RenderDigest(dateStr, digests)

	from := os.Getenv("DIGEST_FROM")
	to := strings.Split(os.Getenv("DIGEST_TO"), ",")
	if from != "" && len(to) > 0 && to[0] != "" {
		subject := fmt.Sprintf("Closing digest %s", dateStr)
		if err := SendDigestEmail(ctx, from, to, subject, body); err != nil {
			fmt.Printf("[ERROR] failed to send digest email: %v\n", err)
		}
	}

	if os.Getenv("SLACK_BOT_TOKEN") != "" {
		slack := communication.ConnectSlack()
		for _, d := range digests {
			if d.Material > 0 {
				msg := fmt.Sprintf("%s closed %s with %d material variance(s), total %s",
					d.Location, dateStr, d.Material, common.FormatCurrency(d.Variance))
				if err := slack.Error(msg); err != nil {
					fmt.Printf("[WARN] slack notification failed: %v\n", err)
				}
			}
		}
	}

	return digests, nil
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(HandleRequest)
	} else {
		digests, err := HandleRequest(context.Background(), DigestEvent{DryRun: true})
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		resJson, _ := json.MarshalIndent(digests, "", "  ")
		fmt.Printf("[SUCCESS] Results:\n%s\n", string(resJson))
	}
}
