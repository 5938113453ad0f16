package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rowfilter/handler"
	"github.com/dmitrymomot/rowfilter/pkg/binder"
	"github.com/dmitrymomot/rowfilter/pkg/logger"
	"github.com/dmitrymomot/rowfilter/pkg/rowfilter"
)

// SearchRequest carries the search query of a listing request.
type SearchRequest struct {
	Query string `query:"q" form:"q"`
}

// searchSignals are the DataStar signals bound to the search input.
type searchSignals struct {
	Search *string `json:"search"`
}

// Service serves the catalog listings.
type Service struct {
	storage      Storage
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates a Service. A nil log discards output.
func NewService(storage Storage, views *Views, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	if views == nil {
		views = DefaultViews("")
	}
	log = log.With(logger.Component("catalog"))
	return &Service{
		storage:      storage,
		views:        views,
		log:          log,
		errorHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: views.ErrorPage}),
	}
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "books", http.StatusFound)
	})
	r.Get("/books", s.wrap(s.books))
	r.Post("/books", s.wrap(s.books))
	r.Get("/students", s.wrap(s.students))
	r.Post("/students", s.wrap(s.students))
	r.Get("/librarians", s.wrap(s.librarians))
	r.Post("/librarians", s.wrap(s.librarians))
	r.NotFound(s.wrap(s.notFound))

	return r
}

func (s *Service) wrap(h handler.HandlerFunc[handler.Context, SearchRequest]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, SearchRequest](
			binder.Query(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, SearchRequest](s.errorHandler),
	)
}

func (s *Service) books(ctx handler.Context, req SearchRequest) handler.Response {
	books, err := s.storage.ListBooks(ctx)
	if err != nil {
		return handler.Error(errors.Join(ErrListFailed, err))
	}
	return s.render(ctx, req, bookListing(books))
}

func (s *Service) students(ctx handler.Context, req SearchRequest) handler.Response {
	students, err := s.storage.ListStudents(ctx)
	if err != nil {
		return handler.Error(errors.Join(ErrListFailed, err))
	}
	return s.render(ctx, req, studentListing(students))
}

func (s *Service) librarians(ctx handler.Context, req SearchRequest) handler.Response {
	librarians, err := s.storage.ListLibrarians(ctx)
	if err != nil {
		return handler.Error(errors.Join(ErrListFailed, err))
	}
	return s.render(ctx, req, librarianListing(librarians))
}

func (s *Service) notFound(handler.Context, SearchRequest) handler.Response {
	return handler.Error(handler.ErrNotFound)
}

// render filters the listing by the request query and returns the page, or
// the row and counter patches for DataStar requests.
func (s *Service) render(ctx handler.Context, req SearchRequest, l listing) handler.Response {
	r := ctx.Request()
	query := s.query(r, req)

	start := time.Now()
	grid := rowfilter.NewGrid(l.Rows)
	stats, err := rowfilter.Apply(query, grid)
	if err != nil {
		return handler.Error(err)
	}
	s.log.DebugContext(ctx, "rows filtered",
		logger.Query(query),
		logger.TableID(rowfilter.DefaultTableID),
		logger.FilterStats(stats.Shown, stats.Hidden, stats.Skipped),
		logger.Duration(time.Since(start)),
	)

	params := TableParams{
		Title:   l.Title,
		Path:    r.URL.Path,
		InputID: rowfilter.DefaultInputID,
		TableID: rowfilter.DefaultTableID,
		Query:   query,
		Columns: l.Columns,
		Rows:    make([]RowView, grid.Len()),
		Shown:   stats.Shown,
	}
	for i := range grid.Len() {
		row := grid.Row(i)
		params.Rows[i] = RowView{Cells: row.Cells, Hidden: !row.Visible()}
	}

	return handler.TemplPartial(
		s.views.Page(params),
		handler.Patch(s.views.Rows(params), handler.WithTarget("#"+rowsID)),
		handler.Patch(s.views.Counter(params), handler.WithTarget("#"+counterID)),
	)
}

// query prefers the DataStar search signal over the bound query parameter.
func (s *Service) query(r *http.Request, req SearchRequest) string {
	if !handler.IsDataStar(r) {
		return req.Query
	}
	var signals searchSignals
	if err := handler.ReadSignals(r, &signals); err != nil {
		s.log.WarnContext(r.Context(), "failed to read search signals", logger.Error(err))
		return req.Query
	}
	if signals.Search == nil {
		return req.Query
	}
	return *signals.Search
}
