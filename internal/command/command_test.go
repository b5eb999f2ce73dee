package command

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"pvc/internal"
	"pvc/internal/events"
	"pvc/internal/ledger"
	"pvc/internal/services"
	"pvc/internal/structures"
	"pvc/internal/testutil"
	"pvc/internal/transport"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubApp(t *testing.T, body string) (*testutil.MockJar, chan string) {
	t.Helper()
	bodies := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		bodies <- string(raw)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	jar := testutil.NewMockJar()
	original := appFactory
	t.Cleanup(func() { appFactory = original })

	appFactory = func(flags *structures.CliFlags) (*internal.App, error) {
		conf := &structures.Config{
			AppName: "PostViewsCounter",
			Counter: structures.CounterConfig{
				RequestURL: srv.URL + "/wp-admin/admin-ajax.php",
				Nonce:      "n",
				PostID:     flags.PostID,
				Mode:       "admin_ajax",
			},
		}
		logger := &testutil.MockLogger{}
		metrics := testutil.NewMockMetrics()
		bridge := events.NewBridge(logger)
		visitLedger := ledger.NewVisitLedger(conf, jar, logger)
		tr, err := transport.NewDeliveryTransport(conf, srv.Client(), jar, logger)
		if err != nil {
			return nil, err
		}
		counter := services.NewPostViewsCounter(conf, visitLedger, tr, bridge, logger, metrics)
		manual, err := services.NewManualCounter(conf, srv.Client(), jar, bridge, logger, metrics)
		if err != nil {
			return nil, err
		}
		return internal.NewApp(conf, logger, metrics, bridge, counter, manual, visitLedger, jar), nil
	}
	return jar, bodies
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	jar, bodies := stubApp(t, `{"success":true,"storage":{"name":["pvc_visits[0]"],"value":["tok"],"expiry":[0]},"views":4}`)

	out, err := run(t, "check", "--post", "12")
	require.NoError(t, err)

	assert.Equal(t, "action=pvc-check-post&pvc_nonce=n&id=12&storage_type=cookies&storage_data=", <-bodies)
	assert.Contains(t, out, `"views": 4`)
	c, ok := jar.Get("pvc_visits[0]")
	require.True(t, ok)
	assert.Equal(t, "tok", c.Value)
}

func TestCheckCmd_Rejected(t *testing.T) {
	_, _ = stubApp(t, `{"success":false,"data":"blocked"}`)

	_, err := run(t, "check")
	assert.ErrorIs(t, err, transport.ErrApplication)
}

func TestCountCmd(t *testing.T) {
	jar, bodies := stubApp(t, `{"success":true}`)

	_, err := run(t, "count", "--ids", "4,2,4")
	require.NoError(t, err)
	assert.Equal(t, "action=pvc-view-posts&pvc_nonce=n&ids=2%2C4", <-bodies)
	assert.Equal(t, 0, jar.Sets)
}

func TestCountCmd_BadIDs(t *testing.T) {
	_, _ = stubApp(t, `{}`)

	_, err := run(t, "count", "--ids", "4,x")
	assert.Error(t, err)
}

func TestJarCmd(t *testing.T) {
	_, _ = stubApp(t, `{"storage":{"name":["pvc_visits[0]","pvc_visits[1]"],"value":["t1","t2"],"expiry":[0,0]}}`)
	_, err := run(t, "check")
	require.NoError(t, err)

	out, err := run(t, "jar")
	require.NoError(t, err)
	assert.Contains(t, out, `pvc_visits: "t1at2"`)
	assert.Contains(t, out, "pvc_visits[1]=t2")

	out, err = run(t, "jar", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"snapshot": "t1at2"`)
}

func TestCountCmd_NoIDs(t *testing.T) {
	_, bodies := stubApp(t, `{}`)

	_, err := run(t, "count", "--ids", " , ")
	assert.EqualError(t, err, "no post ids given")
	assert.Empty(t, bodies)
}
