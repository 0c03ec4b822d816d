package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.10 ", "2001:db8::/32", "garbage", ""})
	assert.False(t, m.IsEmpty())

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.168.1.10", true},
		{"192.168.1.11", false},
		{"::ffff:10.0.0.1", true},
		{"2001:db8::1", true},
		{"2001:db9::1", false},
		{"not-an-ip", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Allow(tt.ip), tt.ip)
	}

	assert.True(t, NewIPMatcher(nil).IsEmpty())
	assert.True(t, NewIPMatcher([]string{"nope"}).IsEmpty())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remote     string
		trustProxy bool
		want       string
	}{
		{
			name:   "remote addr only",
			remote: "203.0.113.7:5555",
			want:   "203.0.113.7",
		},
		{
			name:    "headers ignored without trust",
			headers: map[string]string{"X-Forwarded-For": "1.1.1.1"},
			remote:  "203.0.113.7:5555",
			want:    "203.0.113.7",
		},
		{
			name:       "cloudflare header first",
			headers:    map[string]string{"CF-Connecting-IP": "2.2.2.2", "X-Forwarded-For": "1.1.1.1"},
			remote:     "127.0.0.1:80",
			trustProxy: true,
			want:       "2.2.2.2",
		},
		{
			name:       "left-most forwarded for",
			headers:    map[string]string{"X-Forwarded-For": " 1.1.1.1 , 3.3.3.3"},
			remote:     "127.0.0.1:80",
			trustProxy: true,
			want:       "1.1.1.1",
		},
		{
			name:       "real ip fallback",
			headers:    map[string]string{"X-Real-IP": "4.4.4.4"},
			remote:     "127.0.0.1:80",
			trustProxy: true,
			want:       "4.4.4.4",
		},
		{
			name:       "ipv6 remote",
			remote:     "[2001:db8::1]:443",
			trustProxy: true,
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(r, tt.trustProxy))
		})
	}
}
