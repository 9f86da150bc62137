package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mountworks/internal/pkg/config"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/commands"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// OmiseGateway adapts the Omise card API to the checkout ports. Authorize
// goes over REST because the hold needs an Idempotency-Key header the SDK
// operations do not carry; everything keyed by an existing charge id uses
// the SDK client.
type OmiseGateway struct {
	client     *omise.Client
	secretKey  string
	apiBase    string
	maxRetries int
	httpClient *http.Client
}

func NewOmiseGateway(cfg config.PaymentConfig) (*OmiseGateway, error) {
	client, err := omise.NewClient(cfg.PublicKey, cfg.SecretKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build omise client")
	}

	return &OmiseGateway{
		client:     client,
		secretKey:  cfg.SecretKey,
		apiBase:    strings.TrimRight(cfg.APIBase, "/"),
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Authorize creates a charge with capture=false: the card is held, no money
// moves. A card decline comes back as a failed ChargeResult, not an error;
// errors mean the outcome is unknown and the caller must not assume anything.
func (g *OmiseGateway) Authorize(ctx context.Context, req commands.AuthorizeRequest) (*commands.ChargeResult, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountCents, 10))
	form.Set("currency", req.Currency)
	form.Set("card", req.CardToken)
	form.Set("capture", "false")
	if req.CustomerRef != "" {
		form.Set("metadata[customer_ref]", req.CustomerRef)
	}

	charge, err := g.postChargeWithRetry(ctx, form, req.IdempotencyKey.String())
	if err != nil {
		return nil, err
	}
	return chargeToResult(charge), nil
}

func (g *OmiseGateway) Retrieve(ctx context.Context, chargeID string) (*commands.ChargeResult, error) {
	charge := &omise.Charge{}
	if err := g.client.Do(charge, &operations.RetrieveCharge{ChargeID: chargeID}); err != nil {
		return nil, errs.Wrap(err, "failed to retrieve charge")
	}
	return chargeToResult(charge), nil
}

func (g *OmiseGateway) Capture(ctx context.Context, chargeID string) (*commands.ChargeResult, error) {
	charge := &omise.Charge{}
	if err := g.client.Do(charge, &operations.CaptureCharge{ChargeID: chargeID}); err != nil {
		return nil, errs.Wrap(err, "failed to capture charge")
	}
	return chargeToResult(charge), nil
}

func (g *OmiseGateway) Reverse(ctx context.Context, chargeID string) (*commands.ChargeResult, error) {
	charge := &omise.Charge{}
	if err := g.client.Do(charge, &operations.ReverseCharge{ChargeID: chargeID}); err != nil {
		return nil, errs.Wrap(err, "failed to reverse charge")
	}
	return chargeToResult(charge), nil
}

// postChargeWithRetry retries only on transport failures and 5xx responses.
// The idempotency key makes those retries safe: Omise replays the original
// outcome instead of creating a second charge.
func (g *OmiseGateway) postChargeWithRetry(ctx context.Context, form url.Values, idempotencyKey string) (*omise.Charge, error) {
	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		charge, retryable, err := g.postCharge(ctx, form, idempotencyKey)
		if err == nil {
			return charge, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, errs.Wrap(lastErr, "charge authorization exhausted retries")
}

func (g *OmiseGateway) postCharge(ctx context.Context, form url.Values, idempotencyKey string) (charge *omise.Charge, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiBase+"/charges", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", idempotencyKey)
	req.SetBasicAuth(g.secretKey, "")

	res, err := g.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, true, err
	}

	if res.StatusCode >= 500 {
		return nil, true, fmt.Errorf("omise server error: %s (%d)", string(body), res.StatusCode)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// 4xx carries an error document; surface it as a non-retryable failure.
		var apiErr omise.Error
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Code != "" {
			return nil, false, &apiErr
		}
		return nil, false, fmt.Errorf("omise request rejected: %s (%d)", string(body), res.StatusCode)
	}

	var ch omise.Charge
	if err := json.Unmarshal(body, &ch); err != nil {
		return nil, false, fmt.Errorf("parse charge json failed: %w", err)
	}
	return &ch, false, nil
}

func chargeToResult(ch *omise.Charge) *commands.ChargeResult {
	return &commands.ChargeResult{
		ChargeID:       ch.ID,
		Authorized:     ch.Authorized,
		Captured:       ch.Paid,
		Reversed:       ch.Reversed,
		Declined:       string(ch.Status) == "failed",
		FailureCode:    ch.FailureCode,
		FailureMessage: ch.FailureMessage,
	}
}
