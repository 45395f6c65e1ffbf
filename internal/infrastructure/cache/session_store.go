package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// userSessionsTTL はユーザーのセッション一覧キーの生存時間です
const userSessionsTTL = 30 * 24 * time.Hour

// sessionData はRedisに保存するセッションデータを表します（内部用）
type sessionData struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	UserAgent  string    `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

func toSessionData(s *entity.Session) *sessionData {
	return &sessionData{
		ID:         s.ID,
		UserID:     s.UserID,
		UserAgent:  s.UserAgent,
		IPAddress:  s.IPAddress,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
		LastUsedAt: s.LastUsedAt,
	}
}

func (d *sessionData) toEntity() *entity.Session {
	return &entity.Session{
		ID:         d.ID,
		UserID:     d.UserID,
		UserAgent:  d.UserAgent,
		IPAddress:  d.IPAddress,
		CreatedAt:  d.CreatedAt,
		ExpiresAt:  d.ExpiresAt,
		LastUsedAt: d.LastUsedAt,
	}
}

// SessionStore はリフレッシュセッションの永続化を提供します
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore は新しいSessionStoreを作成します
// ttl はセッションに有効期限が無い場合に使われます
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Save はセッションを保存します
func (s *SessionStore) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(toSessionData(session))
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = s.ttl
	}

	// セッション本体とユーザー別インデックスをアトミックに更新
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, SessionKey(session.ID), data, ttl)
	userSessionsKey := UserSessionsKey(session.UserID)
	pipe.SAdd(ctx, userSessionsKey, session.ID)
	pipe.Expire(ctx, userSessionsKey, userSessionsTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// FindByID はセッションIDでセッションを取得します
func (s *SessionStore) FindByID(ctx context.Context, sessionID string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, SessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperror.NewNotFoundError("session")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sd sessionData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sd.toEntity(), nil
}

// FindByUserID はユーザーIDで全セッションを取得します
// 期限切れでインデックスだけ残っているIDは同時に掃除します
func (s *SessionStore) FindByUserID(ctx context.Context, userID int64) ([]*entity.Session, error) {
	userSessionsKey := UserSessionsKey(userID)

	sessionIDs, err := s.client.SMembers(ctx, userSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user sessions: %w", err)
	}
	if len(sessionIDs) == 0 {
		return []*entity.Session{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, id := range sessionIDs {
		cmds[i] = pipe.Get(ctx, SessionKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*entity.Session, 0, len(sessionIDs))
	var stale []any
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				stale = append(stale, sessionIDs[i])
			}
			continue
		}
		var sd sessionData
		if err := json.Unmarshal(data, &sd); err != nil {
			continue
		}
		sessions = append(sessions, sd.toEntity())
	}

	if len(stale) > 0 {
		if err := s.client.SRem(ctx, userSessionsKey, stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune user sessions: %w", err)
		}
	}
	return sessions, nil
}

// Delete はセッションを削除します
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	session, err := s.FindByID(ctx, sessionID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, SessionKey(sessionID))
	pipe.SRem(ctx, UserSessionsKey(session.UserID), sessionID)
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteByUserID はユーザーの全セッションを削除します
// ロール変更やパスワード変更の後に呼ばれます
func (s *SessionStore) DeleteByUserID(ctx context.Context, userID int64) error {
	userSessionsKey := UserSessionsKey(userID)

	sessionIDs, err := s.client.SMembers(ctx, userSessionsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get user sessions: %w", err)
	}
	if len(sessionIDs) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, id := range sessionIDs {
		pipe.Del(ctx, SessionKey(id))
	}
	pipe.Del(ctx, userSessionsKey)
	_, err = pipe.Exec(ctx)
	return err
}

// CountByUserID はユーザーのセッション数を返します
func (s *SessionStore) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	return s.client.SCard(ctx, UserSessionsKey(userID)).Result()
}

// インターフェースの実装を保証
var _ repository.SessionRepository = (*SessionStore)(nil)
