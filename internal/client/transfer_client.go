package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/47industries/affiliate-service/internal/domain"
)

// HTTPTransferClient talks to the internal transfer service that moves
// real money. The idempotency key is forwarded so the rail can absorb
// retried payouts.
type HTTPTransferClient struct {
	Address string
}

func NewHTTPTransferClient(address string) (*HTTPTransferClient, error) {
	return &HTTPTransferClient{
		Address: address,
	}, nil
}

type transferRequest struct {
	Destination    string  `json:"destination"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	IdempotencyKey string  `json:"idempotency_key"`
}

type transferResponse struct {
	Reference string `json:"reference"`
}

type transferErrorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPTransferClient) SendTransfer(request domain.TransferRequest) (*domain.TransferResult, error) {
	requestBodyBytes, err := json.Marshal(transferRequest{
		Destination:    request.Destination,
		Amount:         request.Amount,
		Currency:       request.Currency,
		IdempotencyKey: request.IdempotencyKey,
	})
	if err != nil {
		return nil, err
	}

	response, err := http.Post(fmt.Sprintf("%s/transfers", c.Address), "application/json", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var transferResp transferResponse
		if err := json.Unmarshal(responseBodyBytes, &transferResp); err != nil {
			return nil, err
		}
		return &domain.TransferResult{Reference: transferResp.Reference}, nil
	}

	var errorResponse transferErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return nil, err
	}
	return nil, errors.New(errorResponse.Error)
}
