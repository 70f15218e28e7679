// Package gateway holds clients for collaborators outside this service.
package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/prasetyadi/temanku/internal/pkg/http"
	"github.com/prasetyadi/temanku/internal/pkg/logger"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/pkg/retry"
)

// MailGateway delivers one-time codes through the transactional mail relay.
type MailGateway struct {
	client  *httpclient.Client
	retrier *retry.Retrier
	sender  string
}

func NewMailGateway(cfg models.MailerConfig) *MailGateway {
	return &MailGateway{
		client:  httpclient.NewClient(cfg.RelayURL, cfg.APIKey, time.Duration(cfg.TimeoutMS)*time.Millisecond),
		retrier: retry.NewWithDefaults(logger.GetGlobalLogger()),
		sender:  cfg.Sender,
	}
}

type sendMailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendOtpEmail sends the verification code to the recipient. The relay is
// trusted to queue delivery; a 2xx means accepted, not delivered.
func (g *MailGateway) SendOtpEmail(ctx context.Context, to, code string, expiresIn time.Duration) error {
	req := sendMailRequest{
		From:    g.sender,
		To:      to,
		Subject: "Your verification code",
		Body: fmt.Sprintf(
			"Your verification code is %s. It expires in %d minutes.",
			code, int(expiresIn.Minutes()),
		),
	}

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, "/v1/messages", req, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	return nil
}
