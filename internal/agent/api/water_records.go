// В этом файле описаны методы клиента для журнала записей о воде.
package api

import (
	"context"
	"fmt"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

func waterRecordsPath(suffix string, id int64) string {
	return fmt.Sprintf("%s/water_records%s/%d", APIPrefix, suffix, id)
}

// ListWaterRecords — все записи пользователя, новые первыми.
func (c *Client) ListWaterRecords(ctx context.Context, userID int64) ([]sharedModels.WaterRecord, error) {
	var resp []sharedModels.WaterRecord
	err := c.GetJSON(ctx, waterRecordsPath("", userID), &resp)
	return resp, err
}

// TodayWaterRecords — записи за сегодня по времени сервера.
func (c *Client) TodayWaterRecords(ctx context.Context, userID int64) ([]sharedModels.WaterRecord, error) {
	var resp []sharedModels.WaterRecord
	err := c.GetJSON(ctx, waterRecordsPath("/today", userID), &resp)
	return resp, err
}

// LatestWaterRecord — последняя запись пользователя.
func (c *Client) LatestWaterRecord(ctx context.Context, userID int64) (sharedModels.WaterRecord, error) {
	var resp sharedModels.WaterRecord
	err := c.GetJSON(ctx, waterRecordsPath("/now", userID), &resp)
	return resp, err
}

// CreateWaterRecord добавляет запись; время ставит сервер.
func (c *Client) CreateWaterRecord(ctx context.Context, userID int64, req sharedModels.CreateWaterRecordRequest) (sharedModels.WaterRecord, error) {
	var resp sharedModels.WaterRecord
	err := c.PostJSON(ctx, waterRecordsPath("", userID), req, &resp)
	return resp, err
}

// UpdateWaterRecord меняет переданные поля записи waterID.
func (c *Client) UpdateWaterRecord(ctx context.Context, waterID int64, req sharedModels.UpdateWaterRecordRequest) (sharedModels.UpdateWaterRecordResponse, error) {
	var resp sharedModels.UpdateWaterRecordResponse
	err := c.PutJSON(ctx, waterRecordsPath("", waterID), req, &resp)
	return resp, err
}
