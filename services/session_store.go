// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

const sessionCleanupInterval = 10 * time.Minute

type sessionEntry struct {
	seq     int
	session *models.Session
}

// SessionStore keeps chat sessions in memory. Entries expire after ttl
// without activity; a ttl of zero keeps them until deleted.
type SessionStore struct {
	mu      sync.Mutex
	items   *cache.Cache
	counter int
	now     func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &SessionStore{
		items: cache.New(ttl, sessionCleanupInterval),
		now:   time.Now,
	}
}

// Create adds a new session named after its sequence number.
func (s *SessionStore) Create() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	session := &models.Session{
		ID:        fmt.Sprintf("session-%d", s.counter),
		Name:      fmt.Sprintf("Session %d", s.counter),
		Messages:  []models.Message{},
		CreatedAt: s.now(),
	}
	s.items.SetDefault(session.ID, &sessionEntry{seq: s.counter, session: session})
	return session.Clone()
}

func (s *SessionStore) Get(id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.session.Clone(), nil
}

// List returns all live sessions in creation order.
func (s *SessionStore) List() []*models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items.Items()
	entries := make([]*sessionEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.Object.(*sessionEntry))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	sessions := make([]*models.Session, 0, len(entries))
	for _, entry := range entries {
		sessions = append(sessions, entry.session.Clone())
	}
	return sessions
}

func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	s.items.Delete(id)
	return nil
}

// AppendMessage adds msg to the session and refreshes its expiry.
func (s *SessionStore) AppendMessage(id string, msg models.Message) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	entry.session.Messages = append(entry.session.Messages, msg)
	s.items.SetDefault(id, entry)
	return entry.session.Clone(), nil
}

// RemoveMessage drops the message with msgID. Missing sessions or messages are ignored.
func (s *SessionStore) RemoveMessage(id, msgID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return
	}
	msgs := entry.session.Messages
	for i := range msgs {
		if msgs[i].ID == msgID {
			entry.session.Messages = append(msgs[:i:i], msgs[i+1:]...)
			return
		}
	}
}

func (s *SessionStore) lookup(id string) (*sessionEntry, error) {
	obj, found := s.items.Get(id)
	if !found {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, id)
	}
	return obj.(*sessionEntry), nil
}
