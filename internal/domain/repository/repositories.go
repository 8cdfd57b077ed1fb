package repository

// Repositories bundles one implementation of every repository.
type Repositories struct {
	Users      UserRepository
	Categories CategoryRepository
	Articles   ArticleRepository
	Comments   CommentRepository
}
