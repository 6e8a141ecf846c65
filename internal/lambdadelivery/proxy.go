// Package lambdadelivery adapts API Gateway proxy events to the http router.
package lambdadelivery

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	"github.com/go-petr/transaction-api/internal/middleware"
	"github.com/go-petr/transaction-api/pkg/web"
)

var (
	errMissingMethod = errors.New("event has no http method")
	errMissingPath   = errors.New("event has no path")
)

// Proxy serves API Gateway proxy events with an http.Handler.
type Proxy struct {
	handler http.Handler
	logger  zerolog.Logger
}

// NewProxy returns a Proxy serving events with h.
func NewProxy(h http.Handler, logger zerolog.Logger) *Proxy {
	return &Proxy{handler: h, logger: logger}
}

// Handle converts the event into an http request, serves it and converts the recorded response back.
//
// The returned error is always nil, failures are reported through the response status code.
func (p *Proxy) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := NewRequest(ctx, event)
	if err != nil {
		p.logger.Info().Err(err).Str("path", event.Path).Str("method", event.HTTPMethod).Send()
		return invalidRequest(), nil
	}

	w := newResponseWriter()
	p.handler.ServeHTTP(w, req)

	return w.proxyResponse(), nil
}

// NewRequest builds an *http.Request carrying the method, path, query, headers and body of event.
func NewRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	if event.HTTPMethod == "" {
		return nil, errMissingMethod
	}

	if event.Path == "" {
		return nil, errMissingPath
	}

	body := []byte(event.Body)

	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, err
		}

		body = decoded
	}

	u := url.URL{Path: event.Path, RawQuery: queryValues(event).Encode()}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for k, vs := range event.MultiValueHeaders {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	for k, v := range event.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	if req.Header.Get(middleware.RequestIDHeader) == "" {
		if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
			req.Header.Set(middleware.RequestIDHeader, lc.AwsRequestID)
		}
	}

	if ip := event.RequestContext.Identity.SourceIP; ip != "" {
		req.RemoteAddr = ip + ":0"
	}

	return req, nil
}

func queryValues(event events.APIGatewayProxyRequest) url.Values {
	q := url.Values{}

	for k, vs := range event.MultiValueQueryStringParameters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	for k, v := range event.QueryStringParameters {
		if _, ok := q[k]; !ok {
			q.Set(k, v)
		}
	}

	return q
}

func invalidRequest() events.APIGatewayProxyResponse {
	body, _ := json.Marshal(web.NewMessage(web.MsgInvalidRequest))

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusBadRequest,
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Body:       string(body),
	}
}
