package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	circuitbreaker "github.com/jobmanagement/job-service/internal/infrastructure/circuit-breaker"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/jobmanagement/job-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

var personalNumberPattern = regexp.MustCompile(`^\d{11}$`)

type PersonalNumberResult struct {
	Valid     bool   `json:"valid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PersonalNumberClient calls the civil-registry verification endpoint.
type PersonalNumberClient struct {
	host    string
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func CreatePersonalNumberClient(host string) *PersonalNumberClient {
	return &PersonalNumberClient{
		host:    host,
		breaker: circuitbreaker.CreateCircuitBreaker("personal-number-verification"),
	}
}

func (c *PersonalNumberClient) Verify(ctx context.Context, personalNumber string) (res PersonalNumberResult, err error) {
	// 11-digit format check; no point burning an outbound call on garbage.
	if !personalNumberPattern.MatchString(personalNumber) {
		return res, nil
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		statusCode, respBody, reqErr := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/verify/%s", c.host, personalNumber),
			Method: http.MethodGet,
		})
		if reqErr != nil {
			return nil, reqErr
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("personal number verification returned non-OK status: %d", statusCode)
		}
		return respBody, nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "Verify").Msg("")
		return res, errs.ErrVerificationUnavailable
	}

	if err := json.Unmarshal(body, &res); err != nil {
		log.Error().Err(err).Str("component", "Verify").Msg("")
		return res, errs.ErrVerificationUnavailable
	}

	return res, nil
}
