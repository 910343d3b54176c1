// Utilities for importing a browser session from a copied cURL command.
//
// The SenFlix server authenticates with cookie sessions. Rather than
// reimplementing the login form, the client reads a "Copy as cURL" command
// saved from a signed-in browser tab and replays its headers and cookie.
package shared

import (
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
)

// CurlHeaders represents parsed headers and cookies from a cURL command.
type CurlHeaders struct {
	Headers map[string]string
	Cookie  string
}

// ParseCurlFile reads a file containing a cURL command and extracts headers.
func ParseCurlFile(filepath string) (*CurlHeaders, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read curl file: %w", err)
	}

	return ParseCurlCommand(content)
}

// ParseCurlCommand parses a cURL command string and extracts headers.
func ParseCurlCommand(data []byte) (*CurlHeaders, error) {
	curlCmd := string(data)
	curlCmd = strings.ReplaceAll(curlCmd, "\\\n", " ")
	curlCmd = strings.ReplaceAll(curlCmd, "\\", "")

	headers := make(map[string]string)
	var cookie string

	headerRegex := regexp.MustCompile(`-H\s+'([^']+)'|-H\s+"([^"]+)"`)
	matches := headerRegex.FindAllStringSubmatch(curlCmd, -1)

	for _, match := range matches {
		var headerLine string
		if match[1] != "" {
			headerLine = match[1]
		} else {
			headerLine = match[2]
		}

		parts := strings.SplitN(headerLine, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if strings.ToLower(key) != "cookie" {
				headers[key] = value
			}
		}
	}

	cookieRegex := regexp.MustCompile(`-b\s+'([^']+)'|-b\s+"([^"]+)"`)
	cookieMatches := cookieRegex.FindStringSubmatch(curlCmd)
	if len(cookieMatches) > 1 {
		if cookieMatches[1] != "" {
			cookie = cookieMatches[1]
		} else {
			cookie = cookieMatches[2]
		}
	}

	if cookie == "" {
		for _, match := range matches {
			var headerLine string
			if match[1] != "" {
				headerLine = match[1]
			} else {
				headerLine = match[2]
			}

			if strings.HasPrefix(strings.ToLower(headerLine), "cookie:") {
				parts := strings.SplitN(headerLine, ":", 2)
				if len(parts) == 2 {
					cookie = strings.TrimSpace(parts[1])
				}
				break
			}
		}
	}

	if len(headers) == 0 && cookie == "" {
		return nil, fmt.Errorf("no headers found in curl command")
	}

	return &CurlHeaders{
		Headers: headers,
		Cookie:  cookie,
	}, nil
}

// Apply copies the imported session onto an outgoing request. Hop-by-hop
// headers the browser set for its own transport are skipped.
func (c *CurlHeaders) Apply(req *http.Request) {
	skip := map[string]bool{
		"accept-encoding": true,
		"content-length":  true,
		"host":            true,
		"connection":      true,
	}

	for key, value := range c.Headers {
		if skip[strings.ToLower(key)] {
			continue
		}
		req.Header.Set(key, value)
	}

	if c.Cookie != "" {
		req.Header.Set("Cookie", c.Cookie)
	}
}
