/*
 *     Copyright 2023 The Mirrorlist Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openmirror/mirrorlist/config"
	"github.com/openmirror/mirrorlist/internal/mlerrors"
	"github.com/openmirror/mirrorlist/job"
	"github.com/openmirror/mirrorlist/middlewares"
	"github.com/openmirror/mirrorlist/models"
	"github.com/openmirror/mirrorlist/service/mocks"
	"github.com/openmirror/mirrorlist/types"
)

func mockMirrorRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Error())
	r.GET("/mirrorlist/:version/:repository", h.GetMirrorList)
	r.GET("/isos/:arch/:version", h.GetISOList)
	r.GET("/nearest", h.GetNearestMirrors)
	r.GET("/versions", h.GetVersionTable)
	r.GET("/url-types", h.GetURLTypes)
	r.POST("/sync", h.CreateSync)
	return r
}

func TestHandlers_GetMirrorList(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockRESTMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/mirrorlist/8.4/BaseOS", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.GetMirrorList(gomock.Any(), gomock.Any(), "8.4", "BaseOS").Return(
					"https://mirror-de-1.example.org/almalinux/8.4/BaseOS/x86_64/os/", nil)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Equal("https://mirror-de-1.example.org/almalinux/8.4/BaseOS/x86_64/os/", w.Body.String())
			},
		},
		{
			name: "unknown repository",
			req:  httptest.NewRequest(http.MethodGet, "/mirrorlist/8.4/nonexistent-repo", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.GetMirrorList(gomock.Any(), gomock.Any(), "8.4", "nonexistent-repo").Return(
					"", mlerrors.NewUnknownRepository("nonexistent-repo", []string{"BaseOS", "AppStream"}))
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.Contains(w.Body.String(), "nonexistent-repo")
				assert.Contains(w.Body.String(), "BaseOS, AppStream")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockREST(ctl)
			tc.mock(svc.EXPECT())
			w := httptest.NewRecorder()
			h := New(config.New(), svc)
			mockRouter := mockMirrorRouter(h)

			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetISOList(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockRESTMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/isos/x86_64/8.4", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.GetISOList(gomock.Any(), gomock.Any(), "8.4", "x86_64").Return(&types.ISOListResponse{
					Nearest: []types.ISOMirror{
						{Name: "mirror-de-1", URL: "https://mirror-de-1.example.org/almalinux/8.4/isos/x86_64/"},
					},
					ByCountry: map[string][]types.ISOMirror{},
				}, nil)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Contains(w.Body.String(), "mirror-de-1")
			},
		},
		{
			name: "unknown architecture",
			req:  httptest.NewRequest(http.MethodGet, "/isos/riscv64/8.4", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.GetISOList(gomock.Any(), gomock.Any(), "8.4", "riscv64").Return(
					nil, mlerrors.NewUnknownArch("riscv64", []string{"x86_64", "aarch64"}))
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockREST(ctl)
			tc.mock(svc.EXPECT())
			w := httptest.NewRecorder()
			h := New(config.New(), svc)
			mockRouter := mockMirrorRouter(h)

			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetNearestMirrors(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockRESTMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/nearest", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.FindNearestMirrors(gomock.Any(), gomock.Any(), false).Return([]models.Mirror{
					{Name: "mirror-de-1"},
				}, nil)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Contains(w.Body.String(), "mirror-de-1")
			},
		},
		{
			name: "empty on unknown flag",
			req:  httptest.NewRequest(http.MethodGet, "/nearest?empty_on_unknown=true", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.FindNearestMirrors(gomock.Any(), gomock.Any(), true).Return([]models.Mirror{}, nil)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "ip query overrides client address",
			req:  httptest.NewRequest(http.MethodGet, "/nearest?ip=203.0.113.10", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.FindNearestMirrors(gomock.Any(), "203.0.113.10", false).Return([]models.Mirror{}, nil)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockREST(ctl)
			tc.mock(svc.EXPECT())
			w := httptest.NewRecorder()
			h := New(config.New(), svc)
			mockRouter := mockMirrorRouter(h)

			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_CreateSync(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockRESTMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/sync", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.TriggerSync(gomock.Any()).Return(nil)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "sync already running",
			req:  httptest.NewRequest(http.MethodPost, "/sync", nil),
			mock: func(ms *mocks.MockRESTMockRecorder) {
				ms.TriggerSync(gomock.Any()).Return(job.ErrSyncRunning)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusConflict, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockREST(ctl)
			tc.mock(svc.EXPECT())
			w := httptest.NewRecorder()
			h := New(config.New(), svc)
			mockRouter := mockMirrorRouter(h)

			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}
