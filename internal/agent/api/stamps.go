// В этом файле описаны методы клиента для стампов.
package api

import (
	"context"
	"fmt"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// ListStamps — справочник стампов.
func (c *Client) ListStamps(ctx context.Context) ([]sharedModels.Stamp, error) {
	var resp []sharedModels.Stamp
	err := c.GetJSON(ctx, APIPrefix+"/stamps/", &resp)
	return resp, err
}

// GetStamp — один стамп.
func (c *Client) GetStamp(ctx context.Context, id int64) (sharedModels.Stamp, error) {
	var resp sharedModels.Stamp
	err := c.GetJSON(ctx, fmt.Sprintf("%s/stamps/%d", APIPrefix, id), &resp)
	return resp, err
}

// ReceivedStamps — входящие стампы пользователя.
func (c *Client) ReceivedStamps(ctx context.Context, userID int64) ([]sharedModels.ReceivedStamp, error) {
	var resp []sharedModels.ReceivedStamp
	err := c.GetJSON(ctx, fmt.Sprintf("%s/stamps/send/%d", APIPrefix, userID), &resp)
	return resp, err
}

// SentStamps — отправленные пользователем стампы.
func (c *Client) SentStamps(ctx context.Context, userID int64) ([]sharedModels.UserStamp, error) {
	var resp []sharedModels.UserStamp
	err := c.GetJSON(ctx, fmt.Sprintf("%s/stamps/sent/%d", APIPrefix, userID), &resp)
	return resp, err
}

// SendStamp отправляет стамп.
func (c *Client) SendStamp(ctx context.Context, req sharedModels.SendStampRequest) (sharedModels.UserStamp, error) {
	var resp sharedModels.UserStamp
	err := c.PostJSON(ctx, APIPrefix+"/stamps/send", req, &resp)
	return resp, err
}

// ReplyStamp отмечает входящий стамп отвеченным.
func (c *Client) ReplyStamp(ctx context.Context, userStampID int64) (sharedModels.UserStamp, error) {
	var resp sharedModels.UserStamp
	err := c.PutJSON(ctx, fmt.Sprintf("%s/stamps/reply/%d", APIPrefix, userStampID), nil, &resp)
	return resp, err
}
