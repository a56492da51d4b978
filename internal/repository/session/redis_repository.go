package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/pkg/utils"
)

// RedisSessionRepo keeps capture sessions and their utterance timelines in
// redis. Sessions are plain keys with a TTL; the timeline is a sorted set
// scored by recording time so reads come back newest first.
type RedisSessionRepo struct {
	rc *redis.Client
}

func SessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id.String())
}

func UtteranceListKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s:utterances", id.String())
}

// Save implements session.SessionRepository.
func (r *RedisSessionRepo) Save(s *session.Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("can't marshal session")
	}
	if err := r.rc.Set(SessionKey(s.ID), data, ttl).Err(); err != nil {
		return utils.XError{Reason: "storing session", Meta: err}.ToError()
	}
	// Keep the timeline on the same clock as its session.
	r.rc.Expire(UtteranceListKey(s.ID), ttl)
	return nil
}

// Get implements session.SessionRepository.
func (r *RedisSessionRepo) Get(id uuid.UUID) (*session.Session, error) {
	raw, err := r.rc.Get(SessionKey(id)).Result()
	if err == redis.Nil {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var s session.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete implements session.SessionRepository.
func (r *RedisSessionRepo) Delete(id uuid.UUID) error {
	if err := r.rc.Del(SessionKey(id), UtteranceListKey(id)).Err(); err != nil {
		return utils.XError{Reason: "deleting session", Meta: err}.ToError()
	}
	return nil
}

// AppendUtterance implements session.SessionRepository.
func (r *RedisSessionRepo) AppendUtterance(id uuid.UUID, u session.Utterance) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("can't marshal utterance")
	}
	key := UtteranceListKey(id)
	if err := r.rc.ZAdd(key, redis.Z{
		Member: string(data),
		Score:  float64(u.RecordedAt.Unix()),
	}).Err(); err != nil {
		return utils.XError{Reason: "appending utterance", Meta: err}.ToError()
	}
	// The timeline must never outlive its session.
	if ttl := r.rc.TTL(SessionKey(id)).Val(); ttl > 0 {
		r.rc.Expire(key, ttl)
	}
	return nil
}

// Utterances implements session.SessionRepository.
func (r *RedisSessionRepo) Utterances(id uuid.UUID, limit int64) ([]session.Utterance, error) {
	stop := limit - 1
	if limit <= 0 {
		stop = -1
	}
	raws, err := r.rc.ZRevRange(UtteranceListKey(id), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	out := make([]session.Utterance, 0, len(raws))
	for _, raw := range raws {
		var u session.Utterance
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// NewRedisSessionRepo creates a redis backed session repository.
func NewRedisSessionRepo(rc *redis.Client) session.SessionRepository {
	return &RedisSessionRepo{rc: rc}
}
