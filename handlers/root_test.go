package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/returnslabs/returns-analytics-api/config"
	"github.com/returnslabs/returns-analytics-api/dao"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleRoot(t *testing.T) {
	Convey("Liveness message returned", t, func() {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		HandleRoot(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldContainSubstring, "Payments Returns Analytics API")
	})
}

func TestUnitHandleGetSchema(t *testing.T) {
	Convey("Collection names returned", t, func() {
		req := httptest.NewRequest("GET", "/schema", nil)
		w := httptest.NewRecorder()
		HandleGetSchema(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"collections":["paymentreturn"]`)
	})
}

func TestUnitHandleTestConnection(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	Convey("Database not configured", t, func() {
		Register(mux.NewRouter(), *cfg, nil)

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		HandleTestConnection(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"backend":"running"`)
		So(w.Body.String(), ShouldContainSubstring, `"database":"not available"`)
	})

	Convey("Database unreachable", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().Ping().Return(errors.New("server selection timeout"))
		Register(mux.NewRouter(), *cfg, mock)

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		HandleTestConnection(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"database":"not available"`)
	})

	Convey("Database connected", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().Ping().Return(nil)
		Register(mux.NewRouter(), *cfg, mock)

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		HandleTestConnection(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"database":"connected"`)
	})
}
