package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"

	"kasira.com/kasira/web/common"
)

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	infoCh := os.Getenv("SLACK_INFO_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewSlack(token, SlackOption{InfoChannelID: infoCh, ErrorChannelID: errorCh})
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (this *Slack) Info(message string) error {
	return this.postMessage(this.options.InfoChannelID, message)
}

func (this *Slack) Error(message string) error {
	return this.postMessage(this.options.ErrorChannelID, message)
}

// VarianceAlert posts the material-variance warning raised when a shift is
// closed remotely. Best effort; callers ignore the returned error on the
// close path.
func (s *Slack) VarianceAlert(location string, shiftID uint, variance int64) error {
	direction := "surplus"
	if variance < 0 {
		direction = "shortage"
	}
	msg := fmt.Sprintf(":rotating_light: Shift %d at %s closed with a cash %s of %s",
		shiftID, location, direction, common.FormatCurrency(variance))
	return s.Error(msg)
}
