package seed

import (
	"fmt"
	"log"
	"os"

	"inkwell/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	ShouldClean bool
	// FixtureFile optionally points at a YAML file of deterministic
	// users/posts/comments to load before random generation.
	FixtureFile string
}

// Seed populates the database with demo data.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users, %d posts, %d comments...",
		opts.NumUsers, opts.NumPosts, opts.NumComments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
		log.Println("Existing data cleared")
	}

	factory, err := NewFactory(db)
	if err != nil {
		return err
	}

	if opts.FixtureFile != "" {
		if err := LoadFixtures(db, factory, opts.FixtureFile); err != nil {
			return fmt.Errorf("failed to load fixtures: %w", err)
		}
		log.Printf("Fixtures loaded from %s", opts.FixtureFile)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d demo users created", len(users))

	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[factory.rng.Intn(len(users))]
		posts = append(posts, factory.BuildPost(author))
	}
	if err := factory.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d demo posts created", len(posts))

	if len(posts) > 0 {
		for i := 0; i < opts.NumComments; i++ {
			author := users[factory.rng.Intn(len(users))]
			post := posts[factory.rng.Intn(len(posts))]
			if _, err := factory.CreateComment(author, post); err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}
		}
		log.Printf("%d demo comments created", opts.NumComments)
	}

	log.Printf("Seeding complete. All demo users have the password: %s", DemoPassword)
	return nil
}

// clearData removes all rows, children first to respect foreign keys.
func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// fixtureFile is the YAML shape of a deterministic seed file.
type fixtureFile struct {
	Users []struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Posts    []struct {
			Title    string `yaml:"title"`
			Content  string `yaml:"content"`
			Comments []struct {
				AuthorEmail string `yaml:"author_email"`
				Content     string `yaml:"content"`
			} `yaml:"comments"`
		} `yaml:"posts"`
	} `yaml:"users"`
}

// LoadFixtures reads a YAML fixture file and persists its users, posts,
// and comments. Comment authors are resolved by email among the fixture
// users; unknown emails fall back to the post author.
func LoadFixtures(db *gorm.DB, factory *Factory, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fixtures fixtureFile
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("invalid fixture file: %w", err)
	}

	usersByEmail := make(map[string]*models.User, len(fixtures.Users))
	for _, fu := range fixtures.Users {
		hash := factory.demoHash
		if fu.Password != "" {
			if hash, err = factory.hasher.Hash(fu.Password); err != nil {
				return err
			}
		}
		user := &models.User{Email: fu.Email, PasswordHash: hash}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create fixture user %s: %w", fu.Email, err)
		}
		usersByEmail[user.Email] = user
	}

	for _, fu := range fixtures.Users {
		author := usersByEmail[fu.Email]
		for _, fp := range fu.Posts {
			post := &models.Post{Title: fp.Title, Content: fp.Content, AuthorID: author.ID}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("failed to create fixture post %q: %w", fp.Title, err)
			}
			for _, fc := range fp.Comments {
				commenter := author
				if u, ok := usersByEmail[fc.AuthorEmail]; ok {
					commenter = u
				}
				comment := &models.Comment{
					Content:  fc.Content,
					AuthorID: commenter.ID,
					PostID:   post.ID,
				}
				if err := db.Create(comment).Error; err != nil {
					return fmt.Errorf("failed to create fixture comment: %w", err)
				}
			}
		}
	}

	return nil
}
