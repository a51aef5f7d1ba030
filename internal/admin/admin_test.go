package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves the speakers resource and the upload endpoints from memory.
type fakeAPI struct {
	mu       sync.Mutex
	speakers []*model.Speaker
	nextID   int64
	calls    []string
	deleted  []string
	uploaded []string

	failUpload     bool
	failFileDelete bool
	rejectAdd      bool
}

func newFakeAPI(t *testing.T) (*fakeAPI, *Client) {
	t.Helper()

	api := &fakeAPI{nextID: 1}
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			api.mu.Lock()
			api.calls = append(api.calls, c.Request().Method+" "+c.Request().URL.Path)
			api.mu.Unlock()
			return next(c)
		}
	})

	g := e.Group("/api")
	g.GET("/speakers", api.list)
	g.POST("/speakers", api.add)
	g.PUT("/speakers", api.update)
	g.DELETE("/speakers", api.delete)
	g.POST("/upload", api.upload)
	g.POST("/upload/delete", api.deleteFile)
	g.GET("/lookups/:name", func(c echo.Context) error {
		if c.Param("name") != model.LookupIndustries {
			return c.JSON(http.StatusNotFound, errs.Response{Error: "Lookup not found", Code: "LOOKUP_NOT_FOUND", Status: 404})
		}
		return c.JSON(http.StatusOK, map[string]any{"data": []model.LookupItem{{ID: 1, Value: "Technology"}}})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return api, NewClient(srv.URL + "/api/")
}

func (a *fakeAPI) seed(s *model.Speaker) {
	a.mu.Lock()
	defer a.mu.Unlock()
	s.ID = a.nextID
	a.nextID++
	a.speakers = append([]*model.Speaker{s}, a.speakers...)
}

func (a *fakeAPI) resetCalls() {
	a.mu.Lock()
	a.calls = nil
	a.mu.Unlock()
}

func (a *fakeAPI) callLog() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.calls...)
}

func (a *fakeAPI) find(id int64) (int, *model.Speaker) {
	for i, s := range a.speakers {
		if s.ID == id {
			return i, s
		}
	}
	return -1, nil
}

func (a *fakeAPI) list(c echo.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64); id > 0 {
		_, s := a.find(id)
		if s == nil {
			return c.JSON(http.StatusNotFound, errs.Response{Error: "Speaker not found", Code: "SPEAKER_NOT_FOUND", Status: 404})
		}
		return c.JSON(http.StatusOK, map[string]any{"data": s})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": a.speakers})
}

func (a *fakeAPI) add(c echo.Context) error {
	a.mu.Lock()
	reject := a.rejectAdd
	a.mu.Unlock()
	if reject {
		return c.JSON(http.StatusBadRequest, errs.Response{
			Error: "Validation failed", Code: "BAD_REQUEST", Status: 400,
			Errors: []errs.FieldError{{Field: "name", Error: "is required"}},
		})
	}
	var s model.Speaker
	if err := json.NewDecoder(c.Request().Body).Decode(&s); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Response{Error: "Invalid request body", Status: 400})
	}
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	a.seed(&s)
	return c.JSON(http.StatusCreated, map[string]any{"data": s})
}

func (a *fakeAPI) update(c echo.Context) error {
	var s model.Speaker
	if err := json.NewDecoder(c.Request().Body).Decode(&s); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Response{Error: "Invalid request body", Status: 400})
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	i, _ := a.find(s.ID)
	if i < 0 {
		return c.JSON(http.StatusNotFound, errs.Response{Error: "Speaker not found", Status: 404})
	}
	s.UpdatedAt = time.Now().UTC()
	a.speakers[i] = &s
	return c.JSON(http.StatusOK, map[string]string{"message": "Speaker updated successfully"})
}

func (a *fakeAPI) delete(c echo.Context) error {
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	a.mu.Lock()
	defer a.mu.Unlock()
	i, _ := a.find(id)
	if i < 0 {
		return c.JSON(http.StatusNotFound, errs.Response{Error: "Speaker not found", Status: 404})
	}
	a.speakers = append(a.speakers[:i], a.speakers[i+1:]...)
	return c.JSON(http.StatusOK, map[string]string{"message": "Speaker deleted successfully"})
}

func (a *fakeAPI) setFailUpload(fail bool) {
	a.mu.Lock()
	a.failUpload = fail
	a.mu.Unlock()
}

func (a *fakeAPI) upload(c echo.Context) error {
	a.mu.Lock()
	fail := a.failUpload
	a.mu.Unlock()
	if fail {
		return c.JSON(http.StatusInternalServerError, errs.Response{Error: "Failed to upload file", Status: 500})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errs.Response{Error: "file is required", Status: 400})
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.uploaded = append(a.uploaded, string(data))
	a.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]string{"url": "http://files.test/" + c.FormValue("folder") + "/" + fh.Filename})
}

func (a *fakeAPI) deleteFile(c echo.Context) error {
	a.mu.Lock()
	fail := a.failFileDelete
	a.mu.Unlock()
	if fail {
		return c.JSON(http.StatusInternalServerError, errs.Response{Error: "Failed to delete file", Status: 500})
	}
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Response{Error: "Invalid request body", Status: 400})
	}
	a.mu.Lock()
	a.deleted = append(a.deleted, body.URL)
	a.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]string{"message": "File deleted successfully"})
}

func ptr(s string) *string { return &s }

func TestForm_EmptyNameBlocksSubmission(t *testing.T) {
	api, client := newFakeAPI(t)
	container := NewContainer(For(client, Speakers))

	var alerts []string
	container.Alert = func(msg string) { alerts = append(alerts, msg) }

	form := container.OpenAdd(map[string]any{"company": "Acme"})
	form.OnChange("name", "   ")

	err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrInvalid)
	assert.True(t, form.Invalid("name"))
	assert.False(t, form.Submitting())
	assert.Empty(t, api.callLog(), "no request may be sent for an invalid form")
	assert.Empty(t, alerts)
	assert.Same(t, form, container.Form(), "form stays open")

	form.OnChange("name", "Jane Doe")
	assert.False(t, form.Invalid("name"))
}

func TestForm_TitleIsTheRequiredFieldForEvents(t *testing.T) {
	_, client := newFakeAPI(t)
	form := NewAddForm(For(client, Events), nil)

	assert.False(t, form.Validate())
	assert.True(t, form.Invalid("title"))
	assert.False(t, form.Invalid("name"))

	form.OnChange("title", "Procurement Summit")
	assert.True(t, form.Validate())
}

func TestForm_AddSpeaker(t *testing.T) {
	api, client := newFakeAPI(t)
	container := NewContainer(For(client, Speakers))

	form := container.OpenAdd(nil)
	form.OnChange("name", "Jane Doe")
	form.OnChange("company", "Acme")

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, []string{"POST /api/speakers", "GET /api/speakers"}, api.callLog())
	assert.Nil(t, container.Form(), "form closes after saving")

	items := container.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Jane Doe", items[0].Name)
	assert.Equal(t, "Acme", *items[0].Company)
	assert.Nil(t, items[0].Img)
}

func TestForm_EditReplacesFile(t *testing.T) {
	api, client := newFakeAPI(t)
	api.seed(&model.Speaker{Name: "Jane Doe", Company: ptr("Acme"), Img: ptr("http://files.test/speakers/old.png")})

	container := NewContainer(For(client, Speakers))
	require.NoError(t, container.Refetch(context.Background()))
	api.resetCalls()

	form, err := container.Cards("")[0].Edit()
	require.NoError(t, err)
	assert.True(t, form.Editing())
	assert.Equal(t, "Jane Doe", form.Value("name"))

	form.OnChange("company", "Acme Corp")
	form.SetFile("img", "new.png", strings.NewReader("png bytes"))

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, []string{
		"POST /api/upload",
		"POST /api/upload/delete",
		"PUT /api/speakers",
		"GET /api/speakers",
	}, api.callLog())
	assert.Equal(t, []string{"http://files.test/speakers/old.png"}, api.deleted)

	got := container.Items()[0]
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Acme Corp", *got.Company)
	assert.Equal(t, "http://files.test/speakers/new.png", *got.Img)
}

func TestForm_EditWithoutOldFileSkipsDelete(t *testing.T) {
	api, client := newFakeAPI(t)
	api.seed(&model.Speaker{Name: "Jane Doe"})

	rec, err := For(client, Speakers).Get(context.Background(), 1)
	require.NoError(t, err)
	api.resetCalls()

	form, err := NewEditForm(For(client, Speakers), rec)
	require.NoError(t, err)
	form.SetFile("img", "face.jpg", strings.NewReader("jpg"))

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, []string{"POST /api/upload", "PUT /api/speakers"}, api.callLog())
	assert.Empty(t, api.deleted)
}

func TestForm_UploadFailureAlerts(t *testing.T) {
	api, client := newFakeAPI(t)
	api.setFailUpload(true)
	api.seed(&model.Speaker{Name: "Jane Doe", Img: ptr("http://files.test/speakers/old.png")})

	container := NewContainer(For(client, Speakers))
	var alerts []string
	container.Alert = func(msg string) { alerts = append(alerts, msg) }
	require.NoError(t, container.Refetch(context.Background()))
	api.resetCalls()

	form, err := container.OpenEdit(container.Items()[0])
	require.NoError(t, err)
	form.SetFile("img", "new.png", strings.NewReader("png"))

	err = form.Submit(context.Background())
	require.ErrorIs(t, err, ErrUpload)

	assert.Equal(t, []string{"Failed to upload file"}, alerts)
	assert.Equal(t, []string{"POST /api/upload"}, api.callLog(), "nothing runs after a failed upload")
	assert.False(t, form.Submitting())
	assert.Same(t, form, container.Form(), "form stays open on failure")
}

func TestForm_RetryAfterFailedUploadResendsFile(t *testing.T) {
	api, client := newFakeAPI(t)
	api.setFailUpload(true)

	container := NewContainer(For(client, Speakers))
	form := container.OpenAdd(map[string]any{"name": "Jane Doe"})
	form.SetFile("img", "jane.png", strings.NewReader("png bytes"))

	require.ErrorIs(t, form.Submit(context.Background()), ErrUpload)
	assert.Empty(t, api.uploaded)

	api.setFailUpload(false)
	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, []string{"png bytes"}, api.uploaded)
	require.Len(t, container.Items(), 1)
	assert.Equal(t, "http://files.test/speakers/jane.png", *container.Items()[0].Img)
}

func TestForm_ServerErrorAlertsMessage(t *testing.T) {
	api, client := newFakeAPI(t)
	api.rejectAdd = true

	container := NewContainer(For(client, Speakers))
	var alerts []string
	container.Alert = func(msg string) { alerts = append(alerts, msg) }

	form := container.OpenAdd(nil)
	form.OnChange("name", "Jane Doe")

	err := form.Submit(context.Background())
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
	assert.Equal(t, []string{"Validation failed"}, alerts)
	assert.Equal(t, []string{"POST /api/speakers"}, api.callLog(), "no refetch after a failed save")
}

func TestForm_RejectsConcurrentSubmit(t *testing.T) {
	_, client := newFakeAPI(t)
	form := NewAddForm(For(client, Speakers), map[string]any{"name": "Jane"})
	form.submitting = true

	assert.ErrorIs(t, form.Submit(context.Background()), ErrSubmitting)
}

func TestContainer_Filtered(t *testing.T) {
	container := NewContainer(For(NewClient("http://unused"), Speakers))
	container.items = []*model.Speaker{
		{Base: model.Base{ID: 3}, Name: "Jane Doe", Company: ptr("Acme")},
		{Base: model.Base{ID: 2}, Name: "John Smith", Title: ptr("Head of Sourcing")},
		{Base: model.Base{ID: 1}, Name: "Ada Lovelace"},
	}

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "blank returns all", query: "  ", want: []int64{3, 2, 1}},
		{name: "matches name case-insensitively", query: "JANE", want: []int64{3}},
		{name: "matches company", query: "acme", want: []int64{3}},
		{name: "matches title", query: "sourcing", want: []int64{2}},
		{name: "substring across records", query: "o", want: []int64{3, 2, 1}},
		{name: "no match", query: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []int64
			for _, s := range container.Filtered(tt.query) {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCard_Delete(t *testing.T) {
	api, client := newFakeAPI(t)
	api.seed(&model.Speaker{Name: "Jane Doe", Img: ptr("http://files.test/speakers/jane.png")})
	api.seed(&model.Speaker{Name: "John Smith"})

	container := NewContainer(For(client, Speakers))
	require.NoError(t, container.Refetch(context.Background()))
	api.resetCalls()

	card := container.Cards("jane")[0]

	var asked string
	deleted, err := card.Delete(context.Background(), func(label string) bool {
		asked = label
		return false
	})
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, "Jane Doe", asked)
	assert.Empty(t, api.callLog(), "cancelled delete sends nothing")

	deleted, err = card.Delete(context.Background(), func(string) bool { return true })
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{
		"DELETE /api/speakers",
		"POST /api/upload/delete",
		"GET /api/speakers",
	}, api.callLog())
	assert.Equal(t, []string{"http://files.test/speakers/jane.png"}, api.deleted)

	require.Len(t, container.Items(), 1)
	assert.Equal(t, "John Smith", container.Items()[0].Name)
}

func TestCard_DeleteSurvivesFileDeleteFailure(t *testing.T) {
	api, client := newFakeAPI(t)
	api.failFileDelete = true
	api.seed(&model.Speaker{Name: "Jane Doe", Img: ptr("http://files.test/speakers/jane.png")})

	container := NewContainer(For(client, Speakers))
	require.NoError(t, container.Refetch(context.Background()))

	deleted, err := container.Cards("")[0].Delete(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, container.Items())
}

func TestClient_Get(t *testing.T) {
	api, client := newFakeAPI(t)
	api.seed(&model.Speaker{Name: "Jane Doe"})
	speakers := For(client, Speakers)

	got, err := speakers.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)

	_, err = speakers.Get(context.Background(), 42)
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "SPEAKER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Speaker not found", httpErr.Message)
}

func TestClient_Lookup(t *testing.T) {
	_, client := newFakeAPI(t)

	items, err := client.Lookup(context.Background(), model.LookupIndustries)
	require.NoError(t, err)
	assert.Equal(t, []model.LookupItem{{ID: 1, Value: "Technology"}}, items)

	_, err = client.Lookup(context.Background(), "planets")
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "LOOKUP_NOT_FOUND", httpErr.Code)
}

func TestClient_NonJSONErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	err := NewClient(srv.URL).DeleteFile(context.Background(), "http://files.test/a.png")
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)
	assert.Equal(t, "BAD_GATEWAY", httpErr.Code)
	assert.Equal(t, "Bad Gateway", httpErr.Message)
}
