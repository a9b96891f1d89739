package controllers

import (
	"net/http"

	"github.com/SketchShifter/tag_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TagController タグに関するコントローラー
type TagController struct {
	tagService services.TagService
}

// NewTagController TagControllerを作成
func NewTagController(tagService services.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// TagRequest タグ作成・更新リクエスト
type TagRequest struct {
	Tag string `json:"tag" binding:"required,max=255"`
}

// FindAll タグ一覧を取得
// サービスの結果をそのまま返し、エラーは加工せずにエラーミドルウェアへ渡す
func (c *TagController) FindAll(ctx *gin.Context) {
	tags, err := c.tagService.FindAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

// FindOne タグを1件取得
func (c *TagController) FindOne(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	tag, err := c.tagService.FindOne(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

// Create タグを作成
func (c *TagController) Create(ctx *gin.Context) {
	var req TagRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tag, err := c.tagService.Create(ctx.Request.Context(), req.Tag)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, tag)
}

// Update タグを更新
func (c *TagController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req TagRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tag, err := c.tagService.Update(ctx.Request.Context(), id, req.Tag)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

// Delete タグを削除
func (c *TagController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.tagService.Delete(ctx.Request.Context(), id); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
