/**
* Name: 			handler.go
* Description: 		핸들러 공용 의존성과 응답 타입
* Workflow: 		main에서 Configure로 채팅 서비스/미디어 저장소/MEDIA_URL 주입
 */

package handler

import (
	"strings"
	"sync"

	"PortfolioSite/internal/assistant"
	"PortfolioSite/internal/media"
)

type Deps struct {
	Assistant *assistant.Service
	Media     *media.Store
	MediaURL  string
}

var (
	depsMu sync.RWMutex
	deps   Deps
)

// Configure 핸들러 의존성 설정, 라우터 등록 전에 호출
func Configure(d Deps) {
	if d.MediaURL == "" {
		d.MediaURL = "/media/"
	}
	if !strings.HasSuffix(d.MediaURL, "/") {
		d.MediaURL += "/"
	}
	depsMu.Lock()
	deps = d
	depsMu.Unlock()
}

func current() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
