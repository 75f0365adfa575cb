package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"fortune-cloud/fortune"
)

func TestResolveName(t *testing.T) {
	require.Equal(t, "world", resolveName(""))
	require.Equal(t, "world", resolveName("  "))
	require.Equal(t, "world", resolveName("\t"))
	require.Equal(t, "Alice", resolveName("Alice"))
}

func TestHelloHandler(t *testing.T) {
	r := newRouter(fortune.NewService(fortune.Config{}), true)

	cases := map[string]string{
		"/rest/hello":              `{"hello": "world"}`,
		"/rest/hello?name=":        `{"hello": "world"}`,
		"/rest/hello?name=%20%20":  `{"hello": "world"}`,
		"/rest/hello?name=Bob":     `{"hello": "Bob"}`,
		"/rest/hello?name=Ada+Sun": `{"hello": "Ada Sun"}`,
	}
	for target, want := range cases {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)
			require.JSONEq(t, want, resp.Body.String())
		})
	}
}
