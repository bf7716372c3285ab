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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmirror/mirrorlist/types"
)

// @Summary Get Mirrorlist
// @Description Get the newline separated repository url list for the client
// @Tags Mirrorlist
// @Produce plain
// @Param version path string true "Version"
// @Param repository path string true "Repository"
// @Success 200 {string} string
// @Failure 400
// @Failure 500
// @Router /mirrorlist/{version}/{repository} [get]
func (h *Handlers) GetMirrorList(ctx *gin.Context) {
	var params types.MirrorListParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	mirrorlist, err := h.service.GetMirrorList(ctx.Request.Context(), h.clientAddr(ctx), params.Version, params.Repository)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.String(http.StatusOK, mirrorlist)
}

// @Summary Get ISO List
// @Description Get installation image links grouped by country plus the nearest subset
// @Tags Mirrorlist
// @Produce json
// @Param arch path string true "Architecture"
// @Param version path string true "Version"
// @Success 200 {object} types.ISOListResponse
// @Failure 400
// @Failure 500
// @Router /isos/{arch}/{version} [get]
func (h *Handlers) GetISOList(ctx *gin.Context) {
	var params types.ISOListParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	isos, err := h.service.GetISOList(ctx.Request.Context(), h.clientAddr(ctx), params.Version, params.Arch)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, isos)
}

// @Summary Get Nearest Mirrors
// @Description Get the nearest mirror set for the client
// @Tags Mirrorlist
// @Produce json
// @Param empty_on_unknown query bool false "Return an empty set when the client location is unknown"
// @Success 200 {object} []models.Mirror
// @Failure 500
// @Router /nearest [get]
func (h *Handlers) GetNearestMirrors(ctx *gin.Context) {
	var query types.NearestMirrorsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	mirrors, err := h.service.FindNearestMirrors(ctx.Request.Context(), h.clientAddr(ctx), query.EmptyOnUnknown)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, mirrors)
}

// @Summary Get Version Table
// @Description Get the per architecture version table
// @Tags Mirrorlist
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /versions [get]
func (h *Handlers) GetVersionTable(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.GetVersionTable(ctx.Request.Context()))
}

// @Summary Get URL Types
// @Description Get the distinct protocol types present in the registry
// @Tags Mirrorlist
// @Produce json
// @Success 200 {object} []string
// @Failure 500
// @Router /url-types [get]
func (h *Handlers) GetURLTypes(ctx *gin.Context) {
	urlTypes, err := h.service.GetURLTypes(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, urlTypes)
}

// @Summary Trigger Sync
// @Description Run one registry replacement cycle
// @Tags Sync
// @Produce json
// @Success 200
// @Failure 409
// @Failure 500
// @Router /sync [post]
func (h *Handlers) CreateSync(ctx *gin.Context) {
	if err := h.service.TriggerSync(ctx.Request.Context()); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}
