package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

func (r *Repository) CreateChat(chat *domain.Chat, participantIDs []int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO chats (title, is_group)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at, version
	`
	if err := tx.QueryRowContext(ctx, query, chat.Title, chat.IsGroup).Scan(&chat.ID, &chat.CreatedAt, &chat.UpdatedAt, &chat.Version); err != nil {
		return err
	}

	for _, userID := range participantIDs {
		query = `
			INSERT INTO chat_participants (chat_id, user_id)
			VALUES ($1, $2)
		`
		if _, err := tx.ExecContext(ctx, query, chat.ID, userID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	participants, err := r.getChatParticipants(chat.ID)
	if err != nil {
		return err
	}
	chat.Participants = participants

	return nil
}

func (r *Repository) getChatParticipants(chatID int64) ([]domain.ChatParticipant, error) {
	query := `
		SELECT u.id, COALESCE(u.name, u.email), u.avatar_url, u.phone
		FROM chat_participants cp
		JOIN users u ON cp.user_id = u.id
		WHERE cp.chat_id = $1
		ORDER BY u.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]domain.ChatParticipant, 0)
	for rows.Next() {
		p := domain.ChatParticipant{}
		var avatarURL, phone sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &avatarURL, &phone); err != nil {
			return nil, err
		}
		if avatarURL.Valid {
			p.AvatarURL = &avatarURL.String
		}
		if phone.Valid {
			p.Phone = &phone.String
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *Repository) GetChatByID(id int64) (*domain.Chat, error) {
	query := `
		SELECT title, is_group, created_at, updated_at, version
		FROM chats WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	chat := &domain.Chat{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&chat.Title, &chat.IsGroup, &chat.CreatedAt, &chat.UpdatedAt, &chat.Version); err != nil {
		return nil, err
	}

	participants, err := r.getChatParticipants(id)
	if err != nil {
		return nil, err
	}
	chat.Participants = participants

	return chat, nil
}

// GetChatsForUser returns every chat the user participates in, with
// participants and the most recent message attached, newest activity first.
func (r *Repository) GetChatsForUser(userID int64) ([]*domain.Chat, error) {
	query := `
		SELECT
			c.id,
			c.title,
			c.is_group,
			c.created_at,
			c.updated_at,
			c.version,
			u.id,
			COALESCE(u.name, u.email),
			u.avatar_url,
			u.phone
		FROM chats c
		JOIN chat_participants cp ON c.id = cp.chat_id
		JOIN users u ON cp.user_id = u.id
		WHERE c.id IN (SELECT chat_id FROM chat_participants WHERE user_id = $1)
		ORDER BY c.updated_at DESC, c.id, u.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chatsMap := make(map[int64]*domain.Chat)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			Title     string
			IsGroup   bool
			CreatedAt time.Time
			UpdatedAt time.Time
			Version   int32

			UserID    int64
			UserName  string
			AvatarURL sql.NullString
			Phone     sql.NullString
		}

		dst := []any{
			&row.ID,
			&row.Title,
			&row.IsGroup,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.Version,
			&row.UserID,
			&row.UserName,
			&row.AvatarURL,
			&row.Phone,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		chat, exists := chatsMap[row.ID]
		if !exists {
			chat = &domain.Chat{
				ID:           row.ID,
				Title:        row.Title,
				IsGroup:      row.IsGroup,
				Participants: make([]domain.ChatParticipant, 0),
				CreatedAt:    row.CreatedAt,
				UpdatedAt:    row.UpdatedAt,
				Version:      row.Version,
			}
			chatsMap[row.ID] = chat
			order = append(order, row.ID)
		}

		participant := domain.ChatParticipant{
			ID:   row.UserID,
			Name: row.UserName,
		}
		if row.AvatarURL.Valid {
			participant.AvatarURL = &row.AvatarURL.String
		}
		if row.Phone.Valid {
			participant.Phone = &row.Phone.String
		}
		chat.Participants = append(chat.Participants, participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// attach the latest message of each chat
	query = `
		SELECT DISTINCT ON (m.chat_id)
			m.chat_id, m.id, m.content, m.content_type, m.created_at,
			u.id, COALESCE(u.name, u.email), u.avatar_url
		FROM chat_messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.chat_id IN (SELECT chat_id FROM chat_participants WHERE user_id = $1)
		ORDER BY m.chat_id, m.created_at DESC
	`

	msgRows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer msgRows.Close()

	for msgRows.Next() {
		var chatID int64
		msg := &domain.ChatMessage{}
		var avatarURL sql.NullString
		dst := []any{&chatID, &msg.ID, &msg.Content, &msg.ContentType, &msg.CreatedAt, &msg.Sender.ID, &msg.Sender.Name, &avatarURL}
		if err := msgRows.Scan(dst...); err != nil {
			return nil, err
		}
		if avatarURL.Valid {
			msg.Sender.AvatarURL = &avatarURL.String
		}
		msg.ChatID = chatID
		if chat, exists := chatsMap[chatID]; exists {
			chat.LastMessage = msg
		}
	}

	if err := msgRows.Err(); err != nil {
		return nil, err
	}

	chats := make([]*domain.Chat, 0, len(order))
	for _, id := range order {
		chats = append(chats, chatsMap[id])
	}

	return chats, nil
}

func (r *Repository) AddChatParticipant(chatID int64, userID int64) error {
	query := `
		INSERT INTO chat_participants (chat_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (chat_id, user_id) DO NOTHING
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, chatID, userID)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) RemoveChatParticipant(chatID int64, userID int64) error {
	query := `
		DELETE FROM chat_participants WHERE chat_id = $1 AND user_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, chatID, userID)
	if err != nil {
		return err
	}

	return nil
}

// CreateChatMessage persists a message and bumps the chat's activity
// timestamp so the chat list sorts by latest message.
func (r *Repository) CreateChatMessage(msg *domain.ChatMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO chat_messages (id, chat_id, sender_id, content, content_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	args := []any{msg.ID, msg.ChatID, msg.Sender.ID, msg.Content, msg.ContentType}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&msg.CreatedAt); err != nil {
		return err
	}

	query = `
		UPDATE chats SET updated_at = NOW() WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query, msg.ChatID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetChatMessages returns up to limit messages of a chat in ascending
// creation order, optionally only those created before a given instant for
// backwards paging.
func (r *Repository) GetChatMessages(chatID int64, limit int, before time.Time) ([]*domain.ChatMessage, error) {
	query := `
		SELECT m.id, m.content, m.content_type, m.created_at,
			u.id, COALESCE(u.name, u.email), u.avatar_url
		FROM chat_messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.chat_id = $1 AND ($2::timestamptz IS NULL OR m.created_at < $2)
		ORDER BY m.created_at DESC
		LIMIT $3
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if limit < 1 {
		limit = 50
	}

	var beforeArg any
	if !before.IsZero() {
		beforeArg = before
	}

	rows, err := r.dbpool.QueryContext(ctx, query, chatID, beforeArg, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		msg := &domain.ChatMessage{
			ChatID: chatID,
		}
		var avatarURL sql.NullString
		dst := []any{&msg.ID, &msg.Content, &msg.ContentType, &msg.CreatedAt, &msg.Sender.ID, &msg.Sender.Name, &avatarURL}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if avatarURL.Valid {
			msg.Sender.AvatarURL = &avatarURL.String
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// fetched newest-first for the limit, delivered oldest-first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
