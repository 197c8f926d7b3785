package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONTENT_DIR", "")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sitectl v"+version+"\n", out)
}

func TestPagesList(t *testing.T) {
	out, err := run(t, "pages", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SLUG")
	assert.Contains(t, out, "/services/vat-returns")
	assert.Contains(t, out, "LEAD SOURCE")
}

func TestPagesList_JSON(t *testing.T) {
	out, err := run(t, "pages", "list", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Pages []pageRow `json:"pages"`
		Count int       `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, len(got.Pages), got.Count)

	bySlug := map[string]pageRow{}
	for _, p := range got.Pages {
		bySlug[p.Slug] = p
	}
	require.Contains(t, bySlug, "home")
	assert.Equal(t, "/", bySlug["home"].Path)
	assert.Equal(t, "home", bySlug["home"].Kind)
	assert.Equal(t, "/services/vat-returns", bySlug["vat-returns"].Path)
}

func TestPagesList_BadFormat(t *testing.T) {
	_, err := run(t, "pages", "list", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestJSONLD_Home(t *testing.T) {
	out, err := run(t, "jsonld", "home", "--origin", "https://www.example.co.uk")
	require.NoError(t, err)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &blocks))
	require.NotEmpty(t, blocks)
	assert.Equal(t, "https://schema.org", blocks[0]["@context"])
	assert.Equal(t, []any{"LocalBusiness", "AccountingService"}, blocks[0]["@type"])
}

func TestJSONLD_Service(t *testing.T) {
	out, err := run(t, "jsonld", "vat-returns", "--origin", "https://www.example.co.uk")
	require.NoError(t, err)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &blocks))

	var types []any
	for _, b := range blocks {
		types = append(types, b["@type"])
	}
	assert.Contains(t, types, "Service")
	assert.Contains(t, types, "FAQPage")
	assert.Contains(t, types, "BreadcrumbList")
	assert.Contains(t, out, "https://www.example.co.uk/services/vat-returns")
}

func TestJSONLD_UnknownPage(t *testing.T) {
	_, err := run(t, "jsonld", "nope")
	assert.ErrorContains(t, err, "page 'nope' not found")
}

func TestContentValidate_Embedded(t *testing.T) {
	out, err := run(t, "content", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Content in embedded content is valid")
	assert.Contains(t, out, "Ledgerline Accountants")
}

func TestContentValidate_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("business:\n  name: \"\"\n"), 0o644))

	out, err := run(t, "content", "validate", "--content-dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "❌ Content in "+dir+" is invalid")
	assert.ErrorContains(t, err, "business name is required")
}

func TestContentValidate_MissingDir(t *testing.T) {
	_, err := run(t, "content", "validate", "--content-dir", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestTopicsList(t *testing.T) {
	out, err := run(t, "topics", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "leads.enquiry.submitted")
	assert.Contains(t, out, "leads.enquiry.failed")
	assert.Contains(t, out, "analytics.contact.clicked")
}

func TestTopicsList_ModuleJSON(t *testing.T) {
	out, err := run(t, "topics", "list", "--module", "analytics", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Topics []struct {
			Name   string `json:"name"`
			Module string `json:"module"`
		} `json:"topics"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "analytics.contact.clicked", got.Topics[0].Name)
	assert.Equal(t, "analytics", got.Topics[0].Module)
}

func TestTopicsList_NoMatch(t *testing.T) {
	out, err := run(t, "topics", "list", "--module", "billing")
	require.NoError(t, err)
	assert.Equal(t, "No topics found matching: module 'billing'\n", out)
}

func TestTopicsGet(t *testing.T) {
	out, err := run(t, "topics", "get", "leads.enquiry.submitted")
	require.NoError(t, err)
	assert.Contains(t, out, "Module: leads")
	assert.Contains(t, out, "Payload: EnquirySubmitted")
	assert.Contains(t, out, "widget_id")

	_, err = run(t, "topics", "get", "leads.unknown")
	assert.ErrorContains(t, err, "not found")

	_, err = run(t, "topics", "get", "Bad Name")
	assert.Error(t, err)
}
