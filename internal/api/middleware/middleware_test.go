package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trading-vision-api/internal/api/constant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddlewareError(t *testing.T) {
	testCases := []struct {
		name           string
		handle         func(c *gin.Context)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "no error",
			handle: func(c *gin.Context) {
			},
			expectedStatus: http.StatusOK,
			expectedBody:   ``,
		},
		{
			name: "validation errors - empty",
			handle: func(c *gin.Context) {
				c.Error(validator.ValidationErrors{})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":[],"data":null}`,
		},
		{
			name: "validation errors - missing range bounds",
			handle: func(c *gin.Context) {
				type request struct {
					StartDate string `form:"start_date" binding:"required"`
					EndDate   string `form:"end_date" binding:"required"`
				}

				var r request
				errorArg := c.ShouldBindQuery(&r)

				if errorArg != nil {
					c.Error(errorArg)
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"success":false,` +
				`"error":[{"field":"StartDate",` +
				`"message":"` +
				`Key: 'request.StartDate' Error:Field validation for 'StartDate' failed on the 'required' tag` +
				`"},{"field":"EndDate",` +
				`"message":"` +
				`Key: 'request.EndDate' Error:Field validation for 'EndDate' failed on the 'required' tag` +
				`"}],` +
				`"data":null}`,
		},
		{
			name: "custom error - not found",
			handle: func(c *gin.Context) {
				c.Error(constant.NotFound(constant.QuoteNotFound, "ZZZZ"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: `{"success":false,` +
				`"error":"Quote not found for symbol: ZZZZ","data":null}`,
		},
		{
			name: "custom error - bad request",
			handle: func(c *gin.Context) {
				c.Error(constant.ErrInvalidDays)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"success":false,` +
				`"error":"invalid 'days' query parameter: must be an integer","data":null}`,
		},
		{
			name: "internal server error hides the cause",
			handle: func(c *gin.Context) {
				c.Error(errors.New("unknown error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: `{"success":false,` +
				`"error":"Internal server error","data":null}`,
		},
		{
			name: "handler already responded",
			handle: func(c *gin.Context) {
				c.String(http.StatusOK, "done")
				c.Error(errors.New("late error"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `done`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			recorder := httptest.NewRecorder()
			_, engine := gin.CreateTestContext(recorder)

			engine.GET("/", Error(zap.NewNop()), tt.handle)
			r := httptest.NewRequest("", "/", nil)

			//when
			engine.ServeHTTP(recorder, r)

			//then
			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedBody, recorder.Body.String())
		})
	}
}

func TestMiddlewareErrorLogsInternalCause(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	recorder := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(recorder)
	engine.GET("/", Error(zap.New(core)), func(c *gin.Context) {
		c.Error(errors.New("table exploded"))
	})

	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "unhandled error", entry.Message)
	assert.Equal(t, "table exploded", entry.ContextMap()["error"])
}

func TestTimeoutMiddleware(t *testing.T) {
	r := gin.New()

	r.Use(Error(zap.NewNop()))
	r.Use(Timeout(50 * time.Millisecond))

	// A handler that is slower than the timeout and then consults the
	// request context, the way repository lookups do.
	r.GET("/slow", func(c *gin.Context) {
		time.Sleep(100 * time.Millisecond)

		if err := c.Request.Context().Err(); err != nil {
			c.Error(err)
			return
		}

		// This should never be reached in a successful test.
		c.JSON(http.StatusOK, gin.H{"message": "OK"})
	})

	req, _ := http.NewRequest(http.MethodGet, "/slow", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, `{"success":false,"error":"request timed out","data":null}`, w.Body.String())
}

func TestTimeoutMiddlewareFastHandler(t *testing.T) {
	r := gin.New()
	r.Use(Error(zap.NewNop()))
	r.Use(Timeout(time.Second))
	r.GET("/fast", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "OK"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"message":"OK"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"success":false,"error":"Internal server error","data":null}`, w.Body.String())
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}

func TestRequestLogger(t *testing.T) {
	testCases := []struct {
		name            string
		incomingID      string
		expectGenerated bool
	}{
		{
			name:            "generates an id",
			expectGenerated: true,
		},
		{
			name:       "keeps the caller's id",
			incomingID: "req-123",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			r := gin.New()
			r.Use(RequestLogger(zap.New(core)))
			r.GET("/api/quotes/:symbol", func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/quotes/aapl?x=1", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			id := w.Header().Get(RequestIDHeader)
			if tt.expectGenerated {
				assert.Equal(t, 36, len(id))
			} else {
				assert.Equal(t, tt.incomingID, id)
			}

			assert.Equal(t, 1, logs.Len())
			fields := logs.All()[0].ContextMap()
			assert.Equal(t, id, fields["request_id"])
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, "/api/quotes/aapl", fields["path"])
			assert.Equal(t, "x=1", fields["query"])
			assert.Equal(t, "/api/quotes/:symbol", fields["route"])
			assert.Equal(t, int64(http.StatusNoContent), fields["status"])
		})
	}
}

func TestCORS(t *testing.T) {
	const origin = "http://localhost:3000"

	testCases := []struct {
		name          string
		method        string
		origin        string
		preflight     bool
		expectedAllow string
	}{
		{
			name:          "allowed origin",
			method:        http.MethodGet,
			origin:        origin,
			expectedAllow: origin,
		},
		{
			name:          "other origin",
			method:        http.MethodGet,
			origin:        "http://evil.example",
			expectedAllow: "",
		},
		{
			name:          "preflight from allowed origin",
			method:        http.MethodOptions,
			origin:        origin,
			preflight:     true,
			expectedAllow: origin,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(origin))
			r.GET("/api/quotes", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/quotes", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedAllow, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight {
				assert.Equal(t, http.StatusNoContent, w.Code)
			} else {
				assert.Equal(t, http.StatusOK, w.Code)
			}
		})
	}
}
