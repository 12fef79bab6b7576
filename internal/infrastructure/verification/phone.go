package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	circuitbreaker "github.com/jobmanagement/job-service/internal/infrastructure/circuit-breaker"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/jobmanagement/job-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type PhoneResult struct {
	Valid       bool   `json:"valid"`
	CountryName string `json:"country_name"`
	Carrier     string `json:"carrier"`
	LineType    string `json:"line_type"`
}

type PhoneClient struct {
	host    string
	apiKey  string
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func CreatePhoneClient(host, apiKey string) *PhoneClient {
	return &PhoneClient{
		host:    host,
		apiKey:  apiKey,
		breaker: circuitbreaker.CreateCircuitBreaker("phone-validation"),
	}
}

func (c *PhoneClient) Validate(ctx context.Context, phoneNumber string) (res PhoneResult, err error) {
	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("number", phoneNumber)
	params.Set("country_code", "GE")
	params.Set("format", "1")

	body, err := c.breaker.Execute(func() ([]byte, error) {
		statusCode, respBody, reqErr := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s?%s", c.host, params.Encode()),
			Method: http.MethodGet,
		})
		if reqErr != nil {
			return nil, reqErr
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("phone validation returned non-OK status: %d", statusCode)
		}
		return respBody, nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "Validate").Msg("")
		return res, errs.ErrVerificationUnavailable
	}

	if err := json.Unmarshal(body, &res); err != nil {
		log.Error().Err(err).Str("component", "Validate").Msg("")
		return res, errs.ErrVerificationUnavailable
	}

	return res, nil
}
