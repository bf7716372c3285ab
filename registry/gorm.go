/*
 *     Copyright 2023 The Mirrorlist Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package registry

import (
	"context"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openmirror/mirrorlist/models"
)

// distanceExpr is a squared-chord surrogate for geodesic distance.
// Selection consumes relative order below a small cap only, so any
// monotone-equivalent metric produces identical results.
const distanceExpr = "(latitude - ?) * (latitude - ?) + (longitude - ?) * (longitude - ?)"

type registry struct {
	db *gorm.DB

	// mu serializes replacement cycles. Two interleaved delete/insert
	// sequences must never run against the same tables.
	mu sync.Mutex
}

func (r *registry) ActiveByCountry(ctx context.Context, continent, country string, limit int) ([]models.Mirror, error) {
	var mirrors []models.Mirror
	if err := r.db.WithContext(ctx).Preload("URLs").Where(
		"continent = ? AND country = ? AND is_expired = ?", continent, country, false,
	).Limit(limit).Find(&mirrors).Error; err != nil {
		return nil, err
	}

	return mirrors, nil
}

func (r *registry) ActiveByContinent(ctx context.Context, continent string, lat, lon float64, limit int) ([]models.Mirror, error) {
	var mirrors []models.Mirror
	if err := r.db.WithContext(ctx).Preload("URLs").Where(
		"continent = ? AND is_expired = ?", continent, false,
	).Clauses(clause.OrderBy{
		Expression: clause.Expr{SQL: distanceExpr, Vars: []interface{}{lat, lat, lon, lon}, WithoutParentheses: true},
	}).Limit(limit).Find(&mirrors).Error; err != nil {
		return nil, err
	}

	return mirrors, nil
}

func (r *registry) ActiveNearest(ctx context.Context, lat, lon float64, limit int) ([]models.Mirror, error) {
	var mirrors []models.Mirror
	if err := r.db.WithContext(ctx).Preload("URLs").Where(
		"is_expired = ?", false,
	).Clauses(clause.OrderBy{
		Expression: clause.Expr{SQL: distanceExpr, Vars: []interface{}{lat, lat, lon, lon}, WithoutParentheses: true},
	}).Limit(limit).Find(&mirrors).Error; err != nil {
		return nil, err
	}

	return mirrors, nil
}

func (r *registry) ActiveMirrors(ctx context.Context) ([]models.Mirror, error) {
	var mirrors []models.Mirror
	if err := r.db.WithContext(ctx).Preload("URLs").Where(
		"is_expired = ?", false,
	).Find(&mirrors).Error; err != nil {
		return nil, err
	}

	return mirrors, nil
}

func (r *registry) AllMirrors(ctx context.Context) ([]models.Mirror, error) {
	var mirrors []models.Mirror
	if err := r.db.WithContext(ctx).Preload("URLs").Where(
		"is_expired = ?", false,
	).Order("continent").Order("country").Find(&mirrors).Error; err != nil {
		return nil, err
	}

	return mirrors, nil
}

func (r *registry) URLTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := r.db.WithContext(ctx).Model(&models.MirrorURL{}).Distinct().Pluck("type", &types).Error; err != nil {
		return nil, err
	}

	return types, nil
}

func (r *registry) Replace(ctx context.Context, mirrors []models.Mirror) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Delete-all then insert-all inside one transaction. Rollback on any
	// failure keeps the previous registry content authoritative.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := sess.Unscoped().Delete(&models.MirrorURL{}).Error; err != nil {
			return err
		}

		if err := sess.Unscoped().Delete(&models.Mirror{}).Error; err != nil {
			return err
		}

		if len(mirrors) == 0 {
			return nil
		}

		return tx.Create(&mirrors).Error
	})
}
