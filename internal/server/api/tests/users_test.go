package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	svcModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

func TestHandler_CreateUser_Success(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u srvModels.NewUser) (models.User, error) {
			if u.Name != "taro" {
				t.Fatalf("expected trimmed name taro, got %q", u.Name)
			}
			if u.PasswordHash == "" || u.PasswordHash == "pw" {
				t.Fatalf("expected hashed password, got %q", u.PasswordHash)
			}
			return models.User{ID: 7, Name: u.Name, Bio: u.Bio}, nil
		})

	req := newRequest(http.MethodPost, "/users", `{"user_name":" taro ","password":"pw","bio":"hi"}`, nil)
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	expectStatus(t, rec, http.StatusCreated)
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password must not be returned, body=%q", rec.Body.String())
	}

	var got models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 7 || got.Name != "taro" || utils.Deref(got.Bio, "") != "hi" {
		t.Fatalf("unexpected user %+v", got)
	}
}

func TestHandler_CreateUser_MissingPassword(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := newRequest(http.MethodPost, "/users", `{"user_name":"taro"}`, nil)
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	expectStatus(t, rec, http.StatusBadRequest)
	if resp := decodeError(t, rec); resp.Message != "missing required field: password" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_CreateUser_BadJSON(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := newRequest(http.MethodPost, "/users", `{bad json`, nil)
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	expectStatus(t, rec, http.StatusBadRequest)
	if resp := decodeError(t, rec); resp.Error != serr.ErrBadJSON.Error() {
		t.Fatalf("unexpected error kind %q", resp.Error)
	}
}

func TestHandler_CreateUser_NotJSON(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := newRequest(http.MethodPost, "/users", `{"user_name":"taro","password":"pw"}`, nil)
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	expectStatus(t, rec, http.StatusUnsupportedMediaType)
}

func TestHandler_GetUser(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(models.User{ID: 1, Name: "taro"}, nil)

	rec := httptest.NewRecorder()
	h.GetUser(rec, newRequest(http.MethodGet, "/users/1", "", map[string]string{"id": "1"}))

	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"user_name":"taro"`) {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().GetByID(gomock.Any(), int64(99)).Return(models.User{}, serr.ErrNotFound)

	rec := httptest.NewRecorder()
	h.GetUser(rec, newRequest(http.MethodGet, "/users/99", "", map[string]string{"id": "99"}))

	expectStatus(t, rec, http.StatusNotFound)
	if resp := decodeError(t, rec); resp.Message != serr.ErrUserNotFound.Error() {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_GetUser_ZeroID(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	rec := httptest.NewRecorder()
	h.GetUser(rec, newRequest(http.MethodGet, "/users/0", "", map[string]string{"id": "0"}))

	expectStatus(t, rec, http.StatusNotFound)
}

func TestHandler_UpdateUser_Partial(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().
		Update(gomock.Any(), int64(1), svcModels.UserPatch{Bio: utils.StrPtr("new bio")}).
		Return(models.User{ID: 1, Name: "taro", Bio: utils.StrPtr("new bio")}, nil)

	rec := httptest.NewRecorder()
	h.UpdateUser(rec, newRequest(http.MethodPut, "/users/1", `{"bio":"new bio"}`, map[string]string{"id": "1"}))

	expectStatus(t, rec, http.StatusOK)
}

func TestHandler_UpdateUser_InternalErrorHidesDetails(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.users.EXPECT().
		Update(gomock.Any(), int64(1), gomock.Any()).
		Return(models.User{}, errors.New("pq: connection reset"))

	rec := httptest.NewRecorder()
	h.UpdateUser(rec, newRequest(http.MethodPut, "/users/1", `{"bio":"x"}`, map[string]string{"id": "1"}))

	expectStatus(t, rec, http.StatusInternalServerError)
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Fatalf("db details leaked: %q", rec.Body.String())
	}
}

func TestHandler_Nearby(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.records.EXPECT().
		LatestByUser(gomock.Any(), int64(1)).
		Return(models.WaterRecord{ID: 10, UserID: 1, Lat: 35.0, Lon: 139.0}, nil)
	m.records.EXPECT().
		FindInBox(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q svcModels.NearbyQuery) ([]models.NearbyUser, error) {
			if q.ExcludeUserID != 1 || !q.Box.Contains(35.0, 139.0) {
				t.Fatalf("unexpected query %+v", q)
			}
			return []models.NearbyUser{{UserID: 2, Lat: 35.005, Lon: 139.0}}, nil
		})

	rec := httptest.NewRecorder()
	h.Nearby(rec, newRequest(http.MethodGet, "/users/nearby/1", "", map[string]string{"id": "1"}))

	expectStatus(t, rec, http.StatusOK)

	var got []models.NearbyUser
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].UserID != 2 {
		t.Fatalf("unexpected nearby %+v", got)
	}
}

func TestHandler_Nearby_NoRecords(t *testing.T) {
	t.Parallel()

	h, m := NewTestHandler(t)

	m.records.EXPECT().LatestByUser(gomock.Any(), int64(1)).Return(models.WaterRecord{}, serr.ErrNotFound)

	rec := httptest.NewRecorder()
	h.Nearby(rec, newRequest(http.MethodGet, "/users/nearby/1", "", map[string]string{"id": "1"}))

	expectStatus(t, rec, http.StatusNotFound)
	if resp := decodeError(t, rec); resp.Message != serr.ErrNoWaterRecords.Error() {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}
