package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"github.com/techhaven/store-backend/common"
)

var ErrMissingSlackWebhookURL = errors.New("slack webhook url is not configured")

// SlackPublisher posts notifications to an incoming webhook channel.
type SlackPublisher struct {
	webhookURL      string
	timeFunc        func() int64
	projectNameFunc func() string
}

func NewSlackPublisher() *SlackPublisher {
	return &SlackPublisher{
		common.GetEnv("SLACK_WEBHOOK_URL", ""),
		time.Now().Unix,
		projectName,
	}
}

func (p *SlackPublisher) Publish(ctx context.Context, n *Notification) error {
	if p.webhookURL == "" {
		return ErrMissingSlackWebhookURL
	}

	return slack.PostWebhookContext(ctx, p.webhookURL, p.assemble(n))
}

func (p *SlackPublisher) assemble(n *Notification) *slack.WebhookMessage {
	fields := []slack.AttachmentField{
		{
			Title: "Environment",
			Value: p.projectNameFunc(),
			Short: true,
		},
	}

	for _, f := range n.Fields {
		fields = append(fields, slack.AttachmentField{
			Title: f.Title,
			Value: f.Value,
			Short: true,
		})
	}

	attachment := slack.Attachment{
		Color:  severityColor(n.Severity),
		Title:  n.Subject,
		Fields: fields,
		Text:   assembleSlackText(n.Lines),
		Ts:     json.Number(fmt.Sprintf("%d", p.timeFunc())),
	}

	return &slack.WebhookMessage{
		Attachments: []slack.Attachment{attachment},
	}
}

func assembleSlackText(lines []string) string {
	var text string

	for _, line := range lines {
		// Slack's markdown renderer ignores \n, so we use U + 3164 here to add an empty line.
		text = fmt.Sprintf("%s%sㅤ\n", text, line)
	}

	return text
}
