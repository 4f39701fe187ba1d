// В этом файле описаны методы клиента для работы с пользователями
// и поиском соседей.
package api

import (
	"context"
	"fmt"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// CreateUser регистрирует пользователя (POST /users).
func (c *Client) CreateUser(ctx context.Context, req sharedModels.CreateUserRequest) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.PostJSON(ctx, APIPrefix+"/users", req, &resp)
	return resp, err
}

// GetUser возвращает профиль пользователя.
func (c *Client) GetUser(ctx context.Context, id int64) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.GetJSON(ctx, fmt.Sprintf("%s/users/%d", APIPrefix, id), &resp)
	return resp, err
}

// UpdateUser отправляет только заполненные поля профиля.
func (c *Client) UpdateUser(ctx context.Context, id int64, req sharedModels.UpdateUserRequest) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.PutJSON(ctx, fmt.Sprintf("%s/users/%d", APIPrefix, id), req, &resp)
	return resp, err
}

// Nearby возвращает пользователей рядом с последней записью id.
// Нет соседей — *APIError со статусом 404.
func (c *Client) Nearby(ctx context.Context, id int64) ([]sharedModels.NearbyUser, error) {
	var resp []sharedModels.NearbyUser
	err := c.GetJSON(ctx, fmt.Sprintf("%s/users/nearby/%d", APIPrefix, id), &resp)
	return resp, err
}
