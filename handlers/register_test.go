package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/returnslabs/returns-analytics-api/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRegisterRoutes(t *testing.T) {
	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		Register(router, *cfg, nil)
		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("get-root"), ShouldNotBeNil)
		So(router.GetRoute("get-schema"), ShouldNotBeNil)
		So(router.GetRoute("seed-returns"), ShouldNotBeNil)
		So(router.GetRoute("get-test"), ShouldNotBeNil)
		So(router.GetRoute("get-stats-summary"), ShouldNotBeNil)
		So(router.GetRoute("get-stats-timeseries"), ShouldNotBeNil)
		So(router.GetRoute("get-stats-breakdown"), ShouldNotBeNil)
	})
}

func TestUnitCORS(t *testing.T) {
	Convey("Preflight with a custom header is allowed for any origin", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		Register(router, *cfg, nil)

		req := httptest.NewRequest("OPTIONS", "/seed", nil)
		req.Header.Set("Origin", "http://dashboard.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")

		w := httptest.NewRecorder()
		CORS(router).ServeHTTP(w, req)

		So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		So(w.Header().Get("Access-Control-Allow-Methods"), ShouldEqual, "POST")
		So(w.Header().Get("Access-Control-Allow-Headers"), ShouldContainSubstring, "X-Custom-Header")
	})

	Convey("Simple request carries the allow origin header", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		Register(router, *cfg, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "http://dashboard.example.com")

		w := httptest.NewRecorder()
		CORS(router).ServeHTTP(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
	})
}

func TestUnitGetHealthCheck(t *testing.T) {
	Convey("Get HealthCheck", t, func() {
		req, err := http.NewRequest("GET", "", nil)
		So(err, ShouldBeNil)
		w := httptest.NewRecorder()
		healthCheck(w, req)
		So(w.Code, ShouldEqual, 200)
	})
}
