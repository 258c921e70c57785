// Package domain defines the persistence models for users, categories,
// recipes, comments, ratings, and likes. These types are mapped with GORM
// and form the core data layer of the recipe blog application.
package domain

import (
	"time"
)

// Recipe publication states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// User represents an account that can author recipes, comment, rate, and
// like. Staff users additionally manage recipes, categories, and comment
// moderation.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Username: unique login name.
//   - PasswordHash: bcrypt hash of the password; never serialized.
//   - IsStaff: grants access to authoring and moderation endpoints.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID           string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username"   gorm:"type:varchar(150);not null;uniqueIndex:ux_users_username"`
	PasswordHash string    `json:"-"          gorm:"type:varchar(128);not null"`
	IsStaff      bool      `json:"is_staff"   gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Session is a server-side login session referenced by an HttpOnly cookie.
// Expired rows are ignored on lookup and reaped opportunistically.
type Session struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index:idx_user_sessions"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "sessions" }

// Category groups recipes into browsable sections. Categories are managed
// by staff; deleting one leaves its recipes uncategorized (FK set to NULL).
type Category struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(200);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// Recipe is the central aggregate: an authored dish with ingredients and
// instructions, a draft/published status, and derived interaction data
// (ratings, likes, comments).
//
// Lifecycle:
//   - Saved as draft (manually or by autosave) with no completeness check.
//   - Publishing requires title, description, and prep_time to be present.
//   - At most one in-progress autosaved draft per author by convention;
//     the add form resumes the most recently updated one.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - AuthorID: owning user; only the author (with staff privilege) may
//     edit or delete the recipe.
//   - CategoryID: optional category reference; NULL when the category was
//     removed or never set.
//   - PrepTime / Servings: optional positive integers; NULL when absent
//     (autosave stores empty numeric input as NULL, never zero).
//   - Status: "draft" or "published" (enforced by DB constraint).
//   - IsAutosaved: marks the per-author in-progress draft.
type Recipe struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title"         gorm:"type:varchar(200);not null;default:''"`
	AuthorID     string    `json:"author_id"     gorm:"type:char(36);not null;index:idx_author_recipes"`
	Description  string    `json:"description"   gorm:"type:text;not null;default:''"`
	CategoryID   *string   `json:"category_id,omitempty" gorm:"type:char(36);index"`
	Ingredients  string    `json:"ingredients"   gorm:"type:text;not null;default:''"`
	Instructions string    `json:"instructions"  gorm:"type:text;not null;default:''"`
	ImageURL     string    `json:"image_url"     gorm:"type:varchar(500);not null;default:''"`
	VideoLink    string    `json:"video_link,omitempty" gorm:"type:varchar(500);not null;default:''"`
	Servings     *int      `json:"servings,omitempty"`
	PrepTime     *int      `json:"prep_time,omitempty"` // minutes
	Status       string    `json:"status"        gorm:"type:varchar(10);not null;default:'draft';check:status IN ('draft','published')"`
	IsAutosaved  bool      `json:"is_autosaved"  gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"    gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Author is the owning user. Recipes are cascade-deleted with their
	// author; a removed category only clears the reference.
	Author   User      `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Recipe.
func (Recipe) TableName() string { return "recipes" }

// Comment is a user remark on a recipe, subject to staff moderation.
//
// Approved and Rejected are independent flags: approving never clears a
// rejection and vice versa. Public views hide rejected comments only;
// pending and approved comments are visible to everyone.
type Comment struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	RecipeID  string    `json:"recipe_id"  gorm:"type:char(36);not null;index:idx_recipe_comments,priority:1"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index"`
	Text      string    `json:"text"       gorm:"type:text;not null"`
	Approved  bool      `json:"approved"   gorm:"not null;default:false"`
	Rejected  bool      `json:"rejected"   gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_recipe_comments,priority:2"`
	UpdatedAt time.Time `json:"updated_at"`

	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User   User   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// Rating is a 1..5 score a user gives a recipe. A user holds at most one
// rating per recipe (unique index); re-rating updates the value in place.
type Rating struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	RecipeID  string    `json:"recipe_id"  gorm:"type:char(36);not null;index;uniqueIndex:ux_rating_recipe_user"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index;uniqueIndex:ux_rating_recipe_user"`
	Value     int       `json:"value"      gorm:"not null;check:value BETWEEN 1 AND 5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User   User   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Rating.
func (Rating) TableName() string { return "ratings" }

// RecipeLike is the (user, recipe) like relation. Membership is a simple
// set: the unique index forbids duplicate rows, so toggling flips
// membership without ever producing duplicates.
type RecipeLike struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	RecipeID  string    `json:"recipe_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_like_recipe_user"`
	UserID    string    `json:"user_id"   gorm:"type:char(36);not null;index;uniqueIndex:ux_like_recipe_user"`
	CreatedAt time.Time `json:"created_at"`

	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User   User   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for RecipeLike.
func (RecipeLike) TableName() string { return "recipe_likes" }
