package postgres

import (
	"context"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) GetByUserID(ctx context.Context, userID string) ([]domain.UserSkill, error) {
	query := `SELECT skill_name, skill_type, proficiency
              FROM user_skills WHERE user_id = $1 ORDER BY skill_name`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]domain.UserSkill, 0)
	for rows.Next() {
		var s domain.UserSkill
		if err := rows.Scan(&s.SkillName, &s.SkillType, &s.Proficiency); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ReplaceForUser swaps the user's whole skill record in one transaction so
// readers never observe a partially written list.
func (r *skillRepo) ReplaceForUser(ctx context.Context, userID string, skills []domain.UserSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
		return apperror.Internal(err)
	}

	insert := `INSERT INTO user_skills (user_id, skill_name, skill_type, proficiency, updated_at)
               VALUES ($1, $2, $3, $4, NOW())`
	for _, s := range skills {
		if _, err := tx.Exec(ctx, insert, userID, s.SkillName, s.SkillType, s.Proficiency); err != nil {
			return apperror.Internal(err)
		}
	}

	return tx.Commit(ctx)
}
