package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/Dan9191/wealthwise/internal/config"
	"github.com/Dan9191/wealthwise/internal/engine"
	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/Dan9191/wealthwise/internal/report"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSalary    = errors.New("salary must be a positive number")
	ErrInvalidRecipient = errors.New("invalid recipient email")
)

// QuoteProvider resolves market prices
type QuoteProvider interface {
	Quote(ctx context.Context, ticker string) (models.Quote, error)
	PriceFor(ctx context.Context, ticker string, fallback float64) (float64, string)
}

// Mailer delivers the monthly discipline report
type Mailer interface {
	SendDisciplineReport(to, name string, report models.MonthlyReport, actions []string) error
}

// Service handles business logic
type Service struct {
	engine *engine.Engine
	quotes QuoteProvider
	mailer Mailer
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewService initializes a new service
func NewService(eng *engine.Engine, quotes QuoteProvider, mailer Mailer, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		engine: eng,
		quotes: quotes,
		mailer: mailer,
		log:    log,
		config: cfg,
		now:    time.Now,
	}
}

// Analyze validates the request, prices held positions and the stock
// universe, and runs the full recommendation pipeline
func (s *Service) Analyze(ctx context.Context, req models.AnalyzeRequest) (models.Report, error) {
	if err := validate(req); err != nil {
		return models.Report{}, err
	}
	profile := engine.Normalize(req)

	positions := s.pricePositions(ctx, req.PortfolioData)
	universe, sources := s.priceUniverse(ctx)

	r := s.engine.Run(engine.Input{
		ReportID:     uuid.NewString(),
		Now:          s.now(),
		Profile:      profile,
		Positions:    positions,
		Universe:     universe,
		PriceSources: sources,
	})

	s.log.WithFields(logrus.Fields{
		"report_id":  r.ReportID,
		"mode":       r.ScoreCard.Mode,
		"discipline": r.FinancialDiscipline.Score,
		"score":      r.ScoreCard.TotalScore,
	}).Info("Analysis completed")
	return r, nil
}

// Discipline scores the profile without building the full report
func (s *Service) Discipline(ctx context.Context, req models.AnalyzeRequest) (models.DisciplineReport, error) {
	if err := validate(req); err != nil {
		return models.DisciplineReport{}, err
	}
	return s.engine.Discipline(engine.Normalize(req), s.now()), nil
}

// Quote returns the current quote for a ticker
func (s *Service) Quote(ctx context.Context, ticker string) (models.Quote, error) {
	return s.quotes.Quote(ctx, ticker)
}

// RecommendStocks forecasts the stock universe at current prices
func (s *Service) RecommendStocks(ctx context.Context) []models.StockRecommendation {
	universe, sources := s.priceUniverse(ctx)
	return s.engine.Stocks(universe, sources, s.now())
}

// EmailReport runs the analysis and emails its monthly discipline report
func (s *Service) EmailReport(ctx context.Context, to, name string, req models.AnalyzeRequest) (models.MonthlyReport, error) {
	if _, err := mail.ParseAddress(to); err != nil {
		return models.MonthlyReport{}, fmt.Errorf("%w: %s", ErrInvalidRecipient, to)
	}
	r, err := s.Analyze(ctx, req)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	if err := s.mailer.SendDisciplineReport(to, name, r.MonthlyReport, r.NextActions); err != nil {
		return models.MonthlyReport{}, err
	}
	return r.MonthlyReport, nil
}

// ExportXML renders a report in the configured currency
func (s *Service) ExportXML(r models.Report) ([]byte, error) {
	return report.ExportXML(r, s.config.Currency)
}

func validate(req models.AnalyzeRequest) error {
	if req.Salary == nil || *req.Salary <= 0 {
		return ErrInvalidSalary
	}
	return nil
}

// pricePositions marks every position with its current price. A position
// nobody can quote keeps its buy price.
func (s *Service) pricePositions(ctx context.Context, positions []models.Position) []models.Position {
	if len(positions) == 0 {
		return nil
	}
	priced := make([]models.Position, len(positions))
	for i, p := range positions {
		p.CurrentPrice, p.PriceSource = s.quotes.PriceFor(ctx, p.Ticker, p.Price)
		if p.PriceSource == models.SourceFallback {
			s.log.Warnf("No quote for %s, valuing at buy price", p.Ticker)
		}
		priced[i] = p
	}
	return priced
}

func (s *Service) priceUniverse(ctx context.Context) ([]models.Instrument, map[string]string) {
	universe := engine.DefaultUniverse()
	sources := make(map[string]string, len(universe))
	for i, inst := range universe {
		universe[i].Price, sources[inst.Ticker] = s.quotes.PriceFor(ctx, inst.Ticker, inst.Price)
	}
	return universe, sources
}
