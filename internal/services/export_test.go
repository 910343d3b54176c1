package services

import "net/http"

// Accessors for tests in package services_test.

func (a *APIService) BaseURL() string { return a.baseURL }

func (a *APIService) HTTPClient() *http.Client { return a.httpClient }
