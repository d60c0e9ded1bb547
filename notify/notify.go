package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"

	"github.com/techhaven/store-backend/common"
	"github.com/techhaven/store-backend/logger"
)

// Severity represents a notification urgency.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityMedium
	SeverityUrgent

	SeverityInfoColor   = "#4CAF50"
	SeverityMediumColor = "#FDEF19"
	SeverityUrgentColor = "#CC0000"
)

// Field is a short titled value attached to a notification, rendered as a
// slack attachment field or an email table row.
type Field struct {
	Title string
	Value string
}

// Notification represents a single payment lifecycle event worth telling
// the store operators about.
type Notification struct {
	Severity Severity
	Subject  string
	Fields   []Field
	// Lines are markdown paragraphs assembled into the notification body.
	Lines []string
}

//go:generate mockery --name Sink --output ./mocks

// Sink receives notifications on a best effort basis. Implementations must
// not block or fail the caller; delivery problems are logged and absorbed.
type Sink interface {
	Notify(ctx context.Context, n *Notification)
}

// Publisher delivers a notification to a single destination.
type Publisher interface {
	Publish(ctx context.Context, n *Notification) error
}

// publishTimeout bounds a single delivery to one destination.
const publishTimeout = 30 * time.Second

// Dispatcher fans a notification out to all configured publishers. It
// implements Sink: deliveries run off the caller's goroutine, so a slow or
// failing publisher never blocks or fails the dispatch.
type Dispatcher struct {
	loggerProvider  logger.Provider
	publishers      []Publisher
	timeFunc        func() int64
	projectNameFunc func() string
}

func NewDispatcher(log logger.Provider, publishers ...Publisher) *Dispatcher {
	return &Dispatcher{
		log,
		publishers,
		time.Now().Unix,
		projectName,
	}
}

// Notify hands the notification to every publisher and returns immediately.
// Deliveries run detached from the request context so the caller's response
// never waits on Slack or SendGrid I/O.
func (d *Dispatcher) Notify(ctx context.Context, n *Notification) {
	log := d.loggerProvider(ctx)

	for _, p := range d.publishers {
		p := p

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()

			if err := p.Publish(ctx, n); err != nil {
				log.Errorf("notify: publish failed: %s", err)
			}
		}()
	}
}

func projectName() string {
	if common.Production {
		return "production"
	}

	return common.ProjectID
}

func severityColor(severity Severity) string {
	switch severity {
	case SeverityInfo:
		return SeverityInfoColor
	case SeverityMedium:
		return SeverityMediumColor
	case SeverityUrgent:
		return SeverityUrgentColor
	default:
		return SeverityInfoColor
	}
}

func assembleEmail(n *Notification) string {
	var body string

	for _, f := range n.Fields {
		body = fmt.Sprintf("%s<p><strong>%s:</strong> %s</p>\n", body, f.Title, f.Value)
	}

	for _, rendered := range toHTML(n.Lines) {
		body = fmt.Sprintf("%s%s", body, rendered)
	}

	return body
}

func toHTML(data []string) []string {
	var renderedData []string

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	for _, d := range data {
		html := markdown.ToHTML([]byte(d), nil, renderer)
		renderedData = append(renderedData, string(html))
	}

	return renderedData
}
