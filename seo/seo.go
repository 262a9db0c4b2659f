// Package seo builds the machine-readable feeds for crawlers: robots.txt
// and the XML sitemap.
package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vasuishere/vasudevchemopharma/insights"
)

// staticPage carries the fixed sitemap metadata for an informational page
type staticPage struct {
	loc        string
	changefreq string
	priority   string
}

// staticPages lists the informational pages always present in the sitemap
var staticPages = []staticPage{
	{"/", "weekly", "1.0"},
	{"/aboutus/", "monthly", "0.8"},
	{"/ourservices/", "monthly", "0.8"},
	{"/products/", "weekly", "0.9"},
	{"/insights/", "weekly", "0.8"},
	{"/articles/", "weekly", "0.7"},
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// RobotsTxt renders robots.txt: crawl everything except the admin prefix,
// and point at the sitemap's absolute URL.
func RobotsTxt(domain string) string {
	lines := []string{
		"User-agent: *",
		"Allow: /",
		"",
		"# Disallow admin and internal paths",
		"Disallow: /admin/",
		"",
		fmt.Sprintf("Sitemap: %s/sitemap.xml", domain),
	}
	return strings.Join(lines, "\n")
}

// SitemapXML renders the sitemap for every public URL: the static pages,
// one entry per product slug, one per published-article slug and one per
// static insight. lastmod is always today; per-entity modification times
// are not tracked.
func SitemapXML(domain string, productSlugs, articleSlugs []string) string {
	today := time.Now().Format("2006-01-02")

	var urls []string
	entry := func(loc, changefreq, priority string) {
		urls = append(urls,
			"  <url>\n"+
				"    <loc>"+xmlEscaper.Replace(loc)+"</loc>\n"+
				"    <lastmod>"+today+"</lastmod>\n"+
				"    <changefreq>"+changefreq+"</changefreq>\n"+
				"    <priority>"+priority+"</priority>\n"+
				"  </url>")
	}

	for _, page := range staticPages {
		entry(domain+page.loc, page.changefreq, page.priority)
	}
	for _, slug := range productSlugs {
		entry(fmt.Sprintf("%s/products/%s/", domain, slug), "weekly", "0.8")
	}
	for _, slug := range articleSlugs {
		entry(fmt.Sprintf("%s/articles/%s/", domain, slug), "weekly", "0.7")
	}
	for _, article := range insights.All() {
		entry(fmt.Sprintf("%s/insights/%s/", domain, article.Slug), "monthly", "0.7")
	}

	return `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n" +
		strings.Join(urls, "\n") +
		"\n</urlset>\n"
}
