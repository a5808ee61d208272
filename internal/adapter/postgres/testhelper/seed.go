package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest",
		Role:         role,
		IsActive:     true,
		LastActive:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role, is_active, last_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Username, user.PasswordHash, string(user.Role), user.IsActive, user.LastActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTown creates an active town. Returns a filled domain.Town.
func SeedTown(t *testing.T, pool *pgxpool.Pool) domain.Town {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	town := domain.Town{
		ID:        uuid.New(),
		Name:      "Town " + suffix,
		Slug:      "town-" + suffix,
		Country:   "Kenya",
		IsActive:  true,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO towns (id, name, slug, country, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		town.ID, town.Name, town.Slug, town.Country, town.IsActive, town.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTown insert town: %v", err)
	}

	return town
}

// SeedCategory creates an active category. Returns a filled domain.Category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	category := domain.Category{
		ID:        uuid.New(),
		Name:      "Category " + suffix,
		Slug:      "category-" + suffix,
		Color:     "#007bff",
		IsActive:  true,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name, slug, color, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.Name, category.Slug, category.Color, category.IsActive, category.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	return category
}

// SeedBusiness creates an active business owned by ownerID in townID.
// Returns a filled domain.Business (TownName resolved from the town row).
func SeedBusiness(t *testing.T, pool *pgxpool.Pool, ownerID, townID uuid.UUID) domain.Business {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	business := domain.Business{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Business " + suffix,
		Slug:      "business-" + suffix,
		TownID:    townID,
		Status:    domain.BusinessStatusActive,
		Hours:     domain.BusinessHours{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO businesses (id, owner_id, name, slug, town_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		business.ID, business.OwnerID, business.Name, business.Slug, business.TownID,
		string(business.Status), business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBusiness insert business: %v", err)
	}

	err = pool.QueryRow(ctx, `SELECT name FROM towns WHERE id = $1`, townID).Scan(&business.TownName)
	if err != nil {
		t.Fatalf("testhelper: SeedBusiness resolve town name: %v", err)
	}

	return business
}

// SeedPost creates an active post of type "update" for businessID authored by authorID.
// It does not touch the business posts_count counter. Returns a filled domain.Post.
func SeedPost(t *testing.T, pool *pgxpool.Pool, businessID, authorID uuid.UUID) domain.Post {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	post := domain.Post{
		ID:          uuid.New(),
		BusinessID:  businessID,
		AuthorID:    authorID,
		Caption:     "Post caption " + suffix,
		Type:        domain.PostTypeUpdate,
		Tags:        []string{},
		IsActive:    true,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO posts (id, business_id, author_id, caption, post_type, is_active, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		post.ID, post.BusinessID, post.AuthorID, post.Caption, string(post.Type),
		post.IsActive, post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert post: %v", err)
	}

	return post
}

// SeedChat creates an active user_business chat between userID and the business
// owner, with both registered as participants. Returns a filled domain.Chat.
func SeedChat(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID, participantIDs ...uuid.UUID) domain.Chat {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	chat := domain.Chat{
		ID:             uuid.New(),
		BusinessID:     &businessID,
		Type:           domain.ChatTypeUserBusiness,
		ParticipantIDs: participantIDs,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO chats (id, business_id, chat_type, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		chat.ID, chat.BusinessID, string(chat.Type), chat.IsActive, chat.CreatedAt, chat.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChat insert chat: %v", err)
	}

	for _, pid := range participantIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO chat_participants (chat_id, user_id) VALUES ($1, $2)`,
			chat.ID, pid,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedChat insert participant: %v", err)
		}
	}

	return chat
}
