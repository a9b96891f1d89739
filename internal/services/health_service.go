package services

import (
	"context"
	"time"
)

// Version アプリケーションバージョン
const Version = "1.0.0"

// Pinger 疎通確認できる依存先（*sql.DB など）
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus ヘルスステータス
type HealthStatus struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Healthy status が ok かどうか
func (h HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

// HealthService ヘルスチェックに関するサービスインターフェース
type HealthService interface {
	GetStatus(ctx context.Context) HealthStatus
}

// healthService HealthServiceの実装
type healthService struct {
	startTime time.Time
	db        Pinger
}

// NewHealthService HealthServiceを作成
func NewHealthService(db Pinger) HealthService {
	return &healthService{
		startTime: time.Now(),
		db:        db,
	}
}

// GetStatus サービスのステータスを取得
func (s *healthService) GetStatus(ctx context.Context) HealthStatus {
	status := "ok"
	if s.db != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			status = "degraded"
		}
	}

	return HealthStatus{
		Status:    status,
		Uptime:    time.Since(s.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
	}
}
