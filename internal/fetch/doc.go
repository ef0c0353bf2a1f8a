// Package fetch retrieves raw page bytes over HTTP.
//
// Built on go-resty/resty over a pooled go-retryablehttp transport. Requests
// are single shot: resty retries are disabled and every failure is returned
// to the caller as an *Error.
//
// Features:
//   - Context-based cancellation
//   - Configurable timeout, User-Agent and body size limit
//   - Status failures kept distinct from transport failures
//
// Example Usage:
//
//	client := fetch.NewClient(fetch.DefaultConfig(), logger)
//	page, err := client.Fetch(ctx, "https://www.projectmadurai.org/")
package fetch
