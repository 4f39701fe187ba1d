package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	svcModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

func TestHandler_ListWaterRecords_Empty(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.records.EXPECT().ListByUser(gomock.Any(), int64(3)).Return([]models.WaterRecord{}, nil)

	rec := httptest.NewRecorder()
	h.ListWaterRecords(rec, newRequest(http.MethodGet, "/water_records/3", "", map[string]string{"user_id": "3"}))

	expectStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestHandler_ListTodayWaterRecords(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.records.EXPECT().
		ListByUserBetween(gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, from, to time.Time) ([]models.WaterRecord, error) {
			if to.Sub(from) < 23*time.Hour || to.Sub(from) > 25*time.Hour {
				t.Fatalf("expected one calendar day, got [%v, %v)", from, to)
			}
			return []models.WaterRecord{{ID: 1, UserID: 3, WaterAmount: 200}}, nil
		})

	rec := httptest.NewRecorder()
	h.ListTodayWaterRecords(rec, newRequest(http.MethodGet, "/water_records/today/3", "", map[string]string{"user_id": "3"}))

	expectStatus(t, rec, http.StatusOK)
}

func TestHandler_LatestWaterRecord_Empty(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.records.EXPECT().LatestByUser(gomock.Any(), int64(3)).Return(models.WaterRecord{}, serr.ErrNotFound)

	rec := httptest.NewRecorder()
	h.LatestWaterRecord(rec, newRequest(http.MethodGet, "/water_records/now/3", "", map[string]string{"user_id": "3"}))

	expectStatus(t, rec, http.StatusNotFound)
	if resp := decodeError(t, rec); resp.Message != "no water records found" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_CreateWaterRecord_Success(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	m.records.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in svcModels.NewWaterRecord) (models.WaterRecord, error) {
			if in.UserID != 1 || in.WaterAmount != 0 || in.Lat != 35.68 || in.Lon != 139.76 {
				t.Fatalf("unexpected record %+v", in)
			}
			if in.WaterDate.IsZero() {
				t.Fatalf("expected server-side water_date")
			}
			return models.WaterRecord{ID: 5, UserID: 1, WaterDate: in.WaterDate, Lat: in.Lat, Lon: in.Lon}, nil
		})

	// 0 мл — допустимое значение, поле передано
	body := `{"water_amount":0,"lat":35.68,"lon":139.76,"water_type":"tea"}`
	rec := httptest.NewRecorder()
	h.CreateWaterRecord(rec, newRequest(http.MethodPost, "/water_records/1", body, map[string]string{"user_id": "1"}))

	expectStatus(t, rec, http.StatusCreated)

	var got models.WaterRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestHandler_CreateWaterRecord_MissingLat(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	rec := httptest.NewRecorder()
	h.CreateWaterRecord(rec, newRequest(http.MethodPost, "/water_records/1", `{"water_amount":200,"lon":139.7}`, map[string]string{"user_id": "1"}))

	expectStatus(t, rec, http.StatusBadRequest)
	if resp := decodeError(t, rec); resp.Message != "missing required field: lat" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_CreateWaterRecord_UnknownUser(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().Exists(gomock.Any(), int64(42)).Return(false, nil)

	rec := httptest.NewRecorder()
	h.CreateWaterRecord(rec, newRequest(http.MethodPost, "/water_records/42", `{"water_amount":1,"lat":1,"lon":1}`, map[string]string{"user_id": "42"}))

	expectStatus(t, rec, http.StatusNotFound)
}

func TestHandler_CreateWaterRecord_RepoFailure(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	m.records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.WaterRecord{}, serr.ErrInternal)

	rec := httptest.NewRecorder()
	h.CreateWaterRecord(rec, newRequest(http.MethodPost, "/water_records/1", `{"water_amount":1,"lat":1,"lon":1}`, map[string]string{"user_id": "1"}))

	expectStatus(t, rec, http.StatusInternalServerError)
	if resp := decodeError(t, rec); resp.Message != "failed to create water record" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_UpdateWaterRecord_Success(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.records.EXPECT().
		Update(gomock.Any(), int64(5), svcModels.WaterRecordPatch{WaterAmount: utils.Ptr(300)}).
		Return(models.WaterRecord{ID: 5, UserID: 1, WaterAmount: 300}, nil)

	rec := httptest.NewRecorder()
	h.UpdateWaterRecord(rec, newRequest(http.MethodPut, "/water_records/5", `{"water_amount":300}`, map[string]string{"water_id": "5"}))

	expectStatus(t, rec, http.StatusOK)

	var got models.UpdateWaterRecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Message != "Water record updated successfully" || got.WaterAmount != 300 || got.ID != 5 {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestHandler_UpdateWaterRecord_NewOwnerMissing(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().Exists(gomock.Any(), int64(77)).Return(false, nil)

	rec := httptest.NewRecorder()
	h.UpdateWaterRecord(rec, newRequest(http.MethodPut, "/water_records/5", `{"user_id":77}`, map[string]string{"water_id": "5"}))

	expectStatus(t, rec, http.StatusNotFound)
	if resp := decodeError(t, rec); resp.Message != serr.ErrUserNotFound.Error() {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_UpdateWaterRecord_NotFound(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.records.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(models.WaterRecord{}, serr.ErrNotFound)

	rec := httptest.NewRecorder()
	h.UpdateWaterRecord(rec, newRequest(http.MethodPut, "/water_records/9", `{"comment":"x"}`, map[string]string{"water_id": "9"}))

	expectStatus(t, rec, http.StatusNotFound)
	if resp := decodeError(t, rec); resp.Message != serr.ErrWaterRecordNotFound.Error() {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_UpdateWaterRecord_NotJSON(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := newRequest(http.MethodPut, "/water_records/5", `comment=x`, map[string]string{"water_id": "5"})
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.UpdateWaterRecord(rec, req)

	expectStatus(t, rec, http.StatusUnsupportedMediaType)
}
