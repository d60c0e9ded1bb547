package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	testTools "github.com/techhaven/store-backend/common/test_tools"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/stripe/service"
	serviceMocks "github.com/techhaven/store-backend/stripe/service/mocks"
)

func TestStripe_WebhookHandler(t *testing.T) {
	type fields struct {
		webhookService serviceMocks.WebhookService
	}

	body := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	tests := []struct {
		name       string
		headers    map[string]string
		wantErr    bool
		wantStatus int
		on         func(*fields)
	}{
		{
			name:       "verified event is acknowledged",
			headers:    map[string]string{"Stripe-Signature": "t=1,v1=abc"},
			wantStatus: http.StatusOK,
			on: func(f *fields) {
				f.webhookService.On("HandleEvent", mock.AnythingOfType("*gin.Context"), body, "t=1,v1=abc", "").
					Return(nil)
			},
		},
		{
			name:    "missing signature header",
			headers: map[string]string{},
			wantErr: true,
		},
		{
			name:    "verification failure",
			headers: map[string]string{"Stripe-Signature": "t=1,v1=bad"},
			wantErr: true,
			on: func(f *fields) {
				f.webhookService.On("HandleEvent", mock.AnythingOfType("*gin.Context"), body, "t=1,v1=bad", "").
					Return(service.ErrEventVerification)
			},
		},
	}

	for i := 0; i < len(tests); i++ {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}

			if tt.on != nil {
				tt.on(&f)
			}

			h := &Stripe{
				loggerProvider: logger.FromContext,
				webhookService: &f.webhookService,
			}

			ctx := testTools.GenerateCtxWithRawBody(t, body, tt.headers)

			err := h.WebhookHandler(ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("Stripe.WebhookHandler() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, ctx.Writer.Status())
			}

			f.webhookService.AssertExpectations(t)
		})
	}
}
