package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-test-prep/internal/service"
	"github.com/MKhiriev/go-test-prep/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ArticlesModel lists the articles picked for the user's preferences.
// Opening an article marks it viewed and copies its link.
type ArticlesModel struct {
	ctx      context.Context
	errs     errorMapper
	articles service.ClientArticlesService

	items   []models.Article
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewArticlesModel(ctx context.Context, articles service.ClientArticlesService, errs errorMapper) *ArticlesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &ArticlesModel{ctx: ctx, errs: errs, articles: articles, spinner: s}
}

func (m *ArticlesModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad(false))
}

func (m *ArticlesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case articlesLoadedMsg:
		m.loading = false
		m.errMsg = errorText(m.ctx, m.errs, msg.err)
		if msg.err == nil {
			m.items = msg.articles
			m.idx = clampIndex(m.idx, len(m.items))
		}
		return m, nil
	case articleUpdatedMsg:
		if msg.err != nil {
			m.errMsg = errorText(m.ctx, m.errs, msg.err)
			if msg.like {
				m.setLiked(msg.articleID, !m.isLiked(msg.articleID))
			}
		}
		return m, nil
	case copiedMsg:
		m.status = "Link copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *ArticlesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate("home")
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(true))
	case key.Matches(msg, keys.enter):
		if len(m.items) == 0 {
			return m, nil
		}
		article := &m.items[m.idx]
		article.Viewed = true
		return m, tea.Batch(m.cmdMarkViewed(article.ArticleID), cmdCopyToClipboard(article.URL))
	case key.Matches(msg, keys.like):
		if len(m.items) == 0 {
			return m, nil
		}
		article := &m.items[m.idx]
		article.Liked = !article.Liked
		return m, m.cmdLike(article.ArticleID, article.Liked)
	}
	return m, nil
}

func (m *ArticlesModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading articles...\n")
	case len(m.items) == 0:
		b.WriteString("No articles for your preferences yet\n")
	default:
		for i, a := range m.items {
			flags := "  "
			if a.Liked {
				flags = "♥ "
			}
			title := fitText(a.Title, 56)
			if !a.Viewed {
				title = titleStyle.Render(title)
			}
			fmt.Fprintf(&b, "%s %s%s\n", cursorMark(i == m.idx), flags, title)
			if i == m.idx && a.Summary != "" {
				b.WriteString("     ")
				b.WriteString(helpStyle.Render(fitText(a.Summary, 70)))
				b.WriteString("\n")
			}
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ARTICLES", strings.TrimRight(b.String(), "\n"), "enter: open (copy link) │ f: like │ r: refresh │ esc: back")
}

func (m *ArticlesModel) isLiked(articleID int64) bool {
	for _, a := range m.items {
		if a.ArticleID == articleID {
			return a.Liked
		}
	}
	return false
}

func (m *ArticlesModel) setLiked(articleID int64, liked bool) {
	for i := range m.items {
		if m.items[i].ArticleID == articleID {
			m.items[i].Liked = liked
		}
	}
}

func (m *ArticlesModel) cmdLoad(force bool) tea.Cmd {
	ctx := m.ctx
	articles := m.articles
	return func() tea.Msg {
		items, err := articles.GetArticles(ctx, force)
		return articlesLoadedMsg{articles: items, err: err}
	}
}

func (m *ArticlesModel) cmdLike(articleID int64, liked bool) tea.Cmd {
	ctx := m.ctx
	articles := m.articles
	return func() tea.Msg {
		return articleUpdatedMsg{articleID: articleID, like: true, err: articles.LikeArticle(ctx, articleID, liked)}
	}
}

func (m *ArticlesModel) cmdMarkViewed(articleID int64) tea.Cmd {
	ctx := m.ctx
	articles := m.articles
	return func() tea.Msg {
		return articleUpdatedMsg{articleID: articleID, err: articles.MarkViewed(ctx, articleID)}
	}
}
