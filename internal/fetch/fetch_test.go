package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.Body, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_AllLocationsRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"locations": []}`))
	}))
	defer server.Close()

	client := NewClient()
	client.TigerCenterBase = server.URL

	payload, err := client.AllLocations(context.Background(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations": []}`, string(payload))
	assert.Equal(t, "/dining-all", gotPath)
	assert.Equal(t, "date=2026-03-02", gotQuery)
}

func TestClient_SingleLocationRequestShape(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient()
	client.TigerCenterBase = server.URL

	_, err := client.SingleLocation(context.Background(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 21)
	require.NoError(t, err)
	assert.Equal(t, "date=2026-03-02&locId=21", gotQuery)
}

func TestClient_OccupancyRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient()
	client.OccupancyBase = server.URL

	_, err := client.Occupancy(context.Background(), 104)
	require.NoError(t, err)
	assert.Equal(t, "/densityMapDetail.php", gotPath)
	assert.Equal(t, "mdo=104", gotQuery)
}

func TestClient_FoodTruckPagePlainFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>Trucks</p></body></html>"))
	}))
	defer server.Close()

	client := NewClient()
	client.FoodTruckURL = server.URL

	html, err := client.FoodTruckPage(context.Background())
	require.NoError(t, err)
	assert.Contains(t, html, "Trucks")
}

func TestVisibleText_StripsNoise(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<script>var x = 1;</script>
			<main>
				<p>Weekend   food trucks</p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := VisibleText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Weekend food trucks")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "var x")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   short   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
