package client

import (
	"errors"
	"fmt"
)

var (
	// 요청 자체가 실패 (DNS, 연결 거부, ctx 취소 등)
	ErrNetwork = errors.New("network failure")
	// 2xx 이외의 응답
	ErrHTTPStatus = errors.New("unexpected http status")
	// 응답 바디가 기대한 JSON 형태가 아님
	ErrMalformed = errors.New("malformed response")
)

type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", ErrHTTPStatus, e.Status)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTPStatus
}
