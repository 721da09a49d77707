package spacex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/3-lines-studio/launchboard/internal/types"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func launchesServer(t *testing.T, status int, body string, seen *graphqlRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func launchesBody(launches []types.Launch) string {
	payload := map[string]any{"data": map[string]any{"launchesPast": launches}}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestNewExecutorRequiresEndpoint(t *testing.T) {
	_, err := NewExecutor("")
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

func TestFetchLaunches(t *testing.T) {
	defer goleak.VerifyNone(t)

	want := []types.Launch{
		{
			ID:              "109",
			MissionName:     "CRS-21",
			LaunchDateLocal: "2020-12-06T11:17:00-05:00",
			LaunchSite:      types.LaunchSite{SiteNameLong: "Kennedy Space Center Historic Launch Complex 39A"},
			Links: types.Links{
				ArticleLink:  "https://spaceflightnow.com/2020/12/06/spacex-launches-crs-21/",
				VideoLink:    "https://youtu.be/zwnx7jzwQAM",
				MissionPatch: "https://images2.imgbox.com/2b/10/crs21.png",
			},
			Rocket: types.Rocket{RocketName: "Falcon 9"},
		},
		{
			ID:              "108",
			MissionName:     "Sentinel-6 Michael Freilich",
			LaunchDateLocal: "2020-11-21T09:17:00-08:00",
			Rocket:          types.Rocket{RocketName: "Falcon 9"},
		},
	}

	var seen graphqlRequest
	srv := launchesServer(t, http.StatusOK, launchesBody(want), &seen)
	defer srv.Close()

	exec, err := NewExecutor(srv.URL)
	require.NoError(t, err)

	got, err := exec.FetchLaunches(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("launches mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, LaunchQuery, seen.Query)
	assert.EqualValues(t, LaunchLimit, seen.Variables["limit"])
	for _, field := range []string{"id", "mission_name", "launch_date_local", "site_name_long", "article_link", "video_link", "mission_patch", "rocket_name"} {
		assert.Contains(t, seen.Query, field)
	}
}

func TestFetchLaunchesDoesNotTruncate(t *testing.T) {
	defer goleak.VerifyNone(t)

	launches := make([]types.Launch, 15)
	for i := range launches {
		launches[i] = types.Launch{ID: fmt.Sprintf("%d", i), MissionName: fmt.Sprintf("Mission %d", i)}
	}

	srv := launchesServer(t, http.StatusOK, launchesBody(launches), nil)
	defer srv.Close()

	exec, err := NewExecutor(srv.URL)
	require.NoError(t, err)

	got, err := exec.FetchLaunches(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 15)
	assert.Equal(t, "0", got[0].ID)
	assert.Equal(t, "14", got[14].ID)
}

func TestFetchLaunchesEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty list", body: `{"data":{"launchesPast":[]}}`},
		{name: "null list", body: `{"data":{"launchesPast":null}}`},
		{name: "missing field", body: `{"data":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := launchesServer(t, http.StatusOK, tt.body, nil)
			defer srv.Close()

			exec, err := NewExecutor(srv.URL)
			require.NoError(t, err)

			got, err := exec.FetchLaunches(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestFetchLaunchesErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "graphql error",
			status:  http.StatusOK,
			body:    `{"errors":[{"message":"Cannot query field \"launchesPast\""}]}`,
			wantMsg: "launchesPast",
		},
		{
			name:    "server error with html body",
			status:  http.StatusBadGateway,
			body:    "<html>bad gateway</html>",
			wantMsg: "502",
		},
		{
			name:    "unavailable with json body",
			status:  http.StatusServiceUnavailable,
			body:    `{"data":{"launchesPast":null}}`,
			wantMsg: "503",
		},
		{
			name:    "server error with empty object",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantMsg: "500",
		},
		{
			name:    "redirect",
			status:  http.StatusFound,
			body:    `{"data":{"launchesPast":[]}}`,
			wantMsg: "302",
		},
		{
			name:    "ok with empty object",
			status:  http.StatusOK,
			body:    `{}`,
			wantMsg: ErrNoData.Error(),
		},
		{
			name:    "ok with null data",
			status:  http.StatusOK,
			body:    `{"data":null}`,
			wantMsg: ErrNoData.Error(),
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{"data":`,
			wantMsg: "decoding response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := launchesServer(t, tt.status, tt.body, nil)
			defer srv.Close()

			exec, err := NewExecutor(srv.URL)
			require.NoError(t, err)

			got, err := exec.FetchLaunches(context.Background())
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrQueryFailed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFetchLaunchesInjectedClientChecksStatus(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := launchesServer(t, http.StatusServiceUnavailable, `{"data":{"launchesPast":[]}}`, nil)
	defer srv.Close()

	hc := &http.Client{Transport: srv.Client().Transport}
	exec, err := NewExecutor(srv.URL, WithHTTPClient(hc))
	require.NoError(t, err)

	_, err = exec.FetchLaunches(context.Background())
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Contains(t, err.Error(), "503")
	_, wrapped := hc.Transport.(*statusTransport)
	assert.False(t, wrapped, "caller's client must not be modified")
}

func TestFetchLaunchesTransportFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := launchesServer(t, http.StatusOK, `{}`, nil)
	url := srv.URL
	srv.Close()

	exec, err := NewExecutor(url)
	require.NoError(t, err)

	_, err = exec.FetchLaunches(context.Background())
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestFetchLaunchesContextDeadline(t *testing.T) {
	defer goleak.VerifyNone(t)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	exec, err := NewExecutor(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = exec.FetchLaunches(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestFetchLaunchesSendsUserAgent(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"data":{"launchesPast":[]}}`))
	}))
	defer srv.Close()

	exec, err := NewExecutor(srv.URL, WithUserAgent("launchboard-test"))
	require.NoError(t, err)

	_, err = exec.FetchLaunches(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ua, "launchboard-test"))
}
