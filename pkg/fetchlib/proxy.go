package fetchlib

import (
	"net/http"
	"net/url"

	"golang.org/x/net/proxy"
)

var supportedProxySchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"socks5": true,
}

// ProxyConfig holds a parsed proxy configuration.
type ProxyConfig struct {
	Scheme   string
	Host     string
	Username string
	Password string
}

// ParseProxyURL parses and validates a proxy URL string.
func ParseProxyURL(proxyURL string) (*ProxyConfig, error) {
	if proxyURL == "" {
		return nil, ErrEmptyProxyURL
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, ErrInvalidProxyURL
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalidProxyURL
	}
	if !supportedProxySchemes[parsed.Scheme] {
		return nil, ErrUnsupportedProxyScheme
	}

	config := &ProxyConfig{
		Scheme: parsed.Scheme,
		Host:   parsed.Host,
	}
	if parsed.User != nil {
		config.Username = parsed.User.Username()
		config.Password, _ = parsed.User.Password()
	}
	return config, nil
}

// NewTransport builds an http.RoundTripper honoring the given proxy URL.
// An empty proxyURL falls back to the standard environment proxy
// variables (HTTP_PROXY, HTTPS_PROXY, NO_PROXY). SOCKS5 proxies dial
// through golang.org/x/net/proxy.
func NewTransport(proxyURL string) (http.RoundTripper, error) {
	if proxyURL == "" {
		return &http.Transport{Proxy: http.ProxyFromEnvironment}, nil
	}

	cfg, err := ParseProxyURL(proxyURL)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{}
	if cfg.Scheme == "socks5" {
		var auth *proxy.Auth
		if cfg.Username != "" {
			auth = &proxy.Auth{
				User:     cfg.Username,
				Password: cfg.Password,
			}
		}
		dialer, err := proxy.SOCKS5("tcp", cfg.Host, auth, proxy.Direct)
		if err != nil {
			return nil, err
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.Dial = dialer.Dial
		}
	} else {
		parsed, _ := url.Parse(proxyURL)
		transport.Proxy = http.ProxyURL(parsed)
	}
	return transport, nil
}
