package web

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vasuishere/vasudevchemopharma/config"
	"github.com/Vasuishere/vasudevchemopharma/database"
	"github.com/Vasuishere/vasudevchemopharma/models"
)

// newTestServer wires the app against a fresh in-memory database with one
// product, one published article and one draft article.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	database.DB = db

	category := &models.ProductCategory{Label: "Industrial Chemicals", ShowInOverview: true}
	require.NoError(t, models.SaveProductCategory(db, category))
	require.NoError(t, models.SaveProduct(db, &models.Product{
		CategoryID:  category.ID,
		Icon:        "CuS",
		Name:        "Copper Sulphate",
		Description: "Industrial grade copper sulphate.",
	}))
	require.NoError(t, models.SaveProductArticle(db, &models.ProductArticle{
		Title:       "Published Article",
		Excerpt:     "Published.",
		IsPublished: true,
	}))
	require.NoError(t, models.SaveProductArticle(db, &models.ProductArticle{
		Title:   "Draft Article",
		Excerpt: "Not yet.",
	}))

	cfg := &config.Config{
		App: config.AppConfig{
			Environment:  "test",
			Port:         "0",
			TemplatesDir: "./templates",
			StaticDir:    "./static",
		},
		Site: config.SiteConfig{Domain: "https://example.com"},
	}
	return NewServer(cfg)
}

func doGet(t *testing.T, s *Server, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := s.App().Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestStaticPages(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/aboutus/", "/ourservices/"} {
		resp := doGet(t, s, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestProductListPage(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(t, s, "/products/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	html := body(t, resp)
	assert.Contains(t, html, "Copper Sulphate")
	assert.Contains(t, html, "/products/copper-sulphate/")
	assert.Contains(t, html, "Industrial Chemicals")
}

func TestProductDetailPage(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(t, s, "/products/copper-sulphate/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Copper Sulphate")
}

func TestProductDetailNotFound(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(t, s, "/products/does-not-exist/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestArticlePages(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(t, s, "/articles/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Published Article")
	assert.NotContains(t, html, "Draft Article")

	resp = doGet(t, s, "/articles/published-article/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestArticleNotFound(t *testing.T) {
	s := newTestServer(t)

	// Missing and unpublished slugs are indistinguishable
	resp := doGet(t, s, "/articles/does-not-exist/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doGet(t, s, "/articles/draft-article/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInsightPages(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(t, s, "/insights/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doGet(t, s, "/insights/copper-sulphate-applications-guide/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doGet(t, s, "/insights/does-not-exist/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLegacyRedirects(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		path   string
		target string
	}{
		{"/product/ketoconazole", "/products/"},
		{"/product/pregabalin/extra", "/products/"},
		{"/blog/some-old-post", "/insights/"},
		{"/static/media/VCP-003-TDS.pdf", "/products/"},
	}
	for _, tc := range cases {
		resp := doGet(t, s, tc.path)
		assert.Equal(t, http.StatusFound, resp.StatusCode, tc.path)
		assert.Equal(t, tc.target, resp.Header.Get("Location"), tc.path)
	}
}

func TestRobotsTxtRoute(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(t, s, "/robots.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	text := body(t, resp)
	assert.Contains(t, text, "Disallow: /admin/")
	assert.Contains(t, text, "Sitemap: https://example.com/sitemap.xml")
}

func TestSitemapXMLRoute(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(t, s, "/sitemap.xml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")

	doc := body(t, resp)
	assert.Contains(t, doc, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, doc, "https://example.com/products/copper-sulphate/")
	assert.Contains(t, doc, "https://example.com/articles/published-article/")
	assert.NotContains(t, doc, "draft-article")
}
