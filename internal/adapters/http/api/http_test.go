package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	app "github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/app"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/adapters/http/api"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/taxonomy"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

var apiNow = time.Date(2026, time.August, 14, 10, 0, 0, 0, time.UTC)

// newTestServer stands up the full handler stack over an in-memory service.
func newTestServer() (*httptest.Server, *app.Service) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	svc := app.New(app.WithClock(func() time.Time { return apiNow }))
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	srv := api.NewServer(svc, svc, api.Options{DefaultTrendMonths: 12, MaxTrendMonths: 36})
	srv.Register(context.Background(), mux)
	return httptest.NewServer(mux), svc
}

func submission(rating int) map[string]any {
	ratings := make(map[string]int)
	comments := make(map[string]string)
	for _, id := range taxonomy.ParameterIDs() {
		ratings[id] = rating
		if rating <= 3 {
			comments[id] = "Pacing slipped during the hands-on portion."
		}
	}
	return map[string]any{
		"trainer_id":       "trainer-001",
		"assessor_id":      "manager-001",
		"assessment_date":  "2026-08-10",
		"ratings":          ratings,
		"comments":         comments,
		"overall_comments": "Solid session overall with a few rough transitions.",
	}
}

func post(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	return resp, buf.Bytes()
}

func TestPostAssessment(t *testing.T) {
	ts, svc := newTestServer()
	defer ts.Close()
	defer svc.Stop()

	Convey("Given the assessments endpoint", t, func() {
		Convey("When posting a valid submission", func() {
			resp, body := post(t, ts.URL+"/assessments", submission(4))

			Convey("Then it is created with an id", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusCreated)
				So(body["status"], ShouldEqual, "created")
				So(body["id"], ShouldNotBeEmpty)
			})
		})

		Convey("When retrying with the same assessment id", func() {
			sub := submission(4)
			sub["assessment_id"] = "client-sub-7"
			first, _ := post(t, ts.URL+"/assessments", sub)
			second, body := post(t, ts.URL+"/assessments", sub)

			Convey("Then the retry acks as a duplicate", func() {
				So(first.StatusCode, ShouldEqual, http.StatusCreated)
				So(second.StatusCode, ShouldEqual, http.StatusOK)
				So(body["status"], ShouldEqual, "duplicate")
				So(body["duplicate"], ShouldEqual, true)
			})
		})

		Convey("When a low rating is missing its comment", func() {
			sub := submission(2)
			comments := sub["comments"].(map[string]string)
			delete(comments, "clear_speech")
			resp, body := post(t, ts.URL+"/assessments", sub)

			Convey("Then the contract violation comes back as 422 with field errors", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusUnprocessableEntity)
				So(body["code"], ShouldEqual, "validation_failed")
				fields := body["field_errors"].(map[string]any)
				So(fields, ShouldContainKey, "clear_speech_comments")
			})
		})

		Convey("When the envelope is malformed", func() {
			resp, body := post(t, ts.URL+"/assessments", map[string]any{
				"trainer_id":      "trainer-001",
				"assessment_date": "10/08/2026",
			})

			Convey("Then the request is rejected before the domain contract", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				So(body["code"], ShouldEqual, "bad_request")
			})
		})

		Convey("When the method is wrong", func() {
			resp, _ := get(t, ts.URL+"/assessments")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestReadEndpoints(t *testing.T) {
	ts, svc := newTestServer()
	defer ts.Close()
	defer svc.Stop()

	seed := submission(4)
	if resp, _ := post(t, ts.URL+"/assessments", seed); resp.StatusCode != http.StatusCreated {
		t.Fatalf("seed submission failed: %d", resp.StatusCode)
	}

	Convey("Given a platform with one assessment", t, func() {
		Convey("When registering a profile and reading trainer stats", func() {
			req, _ := http.NewRequest(http.MethodPut, ts.URL+"/profiles/trainer-001",
				bytes.NewReader([]byte(`{"name":"Ada Trainer","team":"Onboarding"}`)))
			putResp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			putResp.Body.Close()
			So(putResp.StatusCode, ShouldEqual, http.StatusOK)

			resp, raw := get(t, ts.URL+"/trainers/trainer-001/stats")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var st map[string]any
			So(json.Unmarshal(raw, &st), ShouldBeNil)
			So(st["trainer_name"], ShouldEqual, "Ada Trainer")
			So(st["total_assessments"], ShouldEqual, 1)
		})

		Convey("When listing all trainer stats", func() {
			resp, raw := get(t, ts.URL+"/trainers/stats?window=month")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var list []map[string]any
			So(json.Unmarshal(raw, &list), ShouldBeNil)
			So(len(list), ShouldEqual, 1)
		})

		Convey("When the window parameter is unknown", func() {
			resp, _ := get(t, ts.URL+"/trainers/stats?window=fortnight")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When reading manager activity", func() {
			resp, raw := get(t, ts.URL+"/managers/activity")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var list []map[string]any
			So(json.Unmarshal(raw, &list), ShouldBeNil)
			So(len(list), ShouldEqual, 1)
			So(list[0]["status"], ShouldEqual, "active")
		})

		Convey("When reading the monthly trend", func() {
			resp, raw := get(t, ts.URL+"/trends/monthly?months=6")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var series []map[string]any
			So(json.Unmarshal(raw, &series), ShouldBeNil)
			So(len(series), ShouldEqual, 6)
		})

		Convey("When the months parameter exceeds the cap", func() {
			resp, body := getJSON(t, ts.URL+"/trends/monthly?months=48")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(body["code"], ShouldEqual, "months_exceeded")
		})

		Convey("When reading the quarterly trend", func() {
			resp, raw := get(t, ts.URL+"/trends/quarterly")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var series []map[string]any
			So(json.Unmarshal(raw, &series), ShouldBeNil)
			So(len(series), ShouldEqual, 8)
		})

		Convey("When reading the itemized report", func() {
			resp, raw := get(t, ts.URL+"/reports/itemized?from=2026-08-01&to=2026-09-01")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var sets map[string][]map[string]any
			So(json.Unmarshal(raw, &sets), ShouldBeNil)
			So(len(sets["by_assessor"]), ShouldEqual, 1)
			So(len(sets["by_trainer"]), ShouldEqual, 1)
		})

		Convey("When a report date is malformed", func() {
			resp, _ := get(t, ts.URL+"/reports/itemized?from=yesterday")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When reading service stats", func() {
			resp, raw := get(t, ts.URL+"/stats")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var got map[string]any
			So(json.Unmarshal(raw, &got), ShouldBeNil)
			So(got["started"], ShouldEqual, true)
			So(got["totalAssessments"], ShouldEqual, 1)
		})

		Convey("When probing health", func() {
			resp, _ := get(t, ts.URL+"/healthz")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, raw := get(t, url)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}
