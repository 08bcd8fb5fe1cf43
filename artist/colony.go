// Package artist renders consistently styled terminal charts. A Colony owns
// the global style configuration (cell size, fonts, spines, legend, palette,
// markers); Artists it spawns draw individual charts through ntcharts, and a
// MultiArtist queues charts and lays them out as a grid.
package artist

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	pkgerrors "github.com/pkg/errors"

	"github.com/euxhenh/peasy/ops"
	"github.com/euxhenh/peasy/palette"
	"github.com/euxhenh/peasy/params"
)

// Default cell dimensions in terminal cells.
const (
	DefaultCellWidth  = 60
	DefaultCellHeight = 15
)

// Config is the raw, heterogeneous style input a Colony normalizes at
// construction. Zero values select defaults. The loosely typed fields accept
// the same shapes their params validators do.
type Config struct {
	// CellWidth and CellHeight size one chart cell, in terminal cells.
	CellWidth  int
	CellHeight int
	// FontSize: params.FontSize, int scalar or map[string]int.
	FontSize any
	// Despine: params.Despine, bool, "tlbr" string or map[string]bool.
	Despine any
	// Legend: params.Legend or map[string]any.
	Legend any
	// Palette: *palette.Palette, preset name, []string or []color.Color.
	Palette any
	// Markers: *ops.Cycle[rune], preset name or []rune.
	Markers any
	// LineStyle: "thin" or "arc".
	LineStyle string
}

// Colony holds the validated style configuration shared by every artist it
// spawns. It is immutable after construction and safe to share.
type Colony struct {
	cellWidth  int
	cellHeight int
	fontSize   params.FontSize
	despine    params.Despine
	legend     params.Legend
	palette    *palette.Palette
	markers    *ops.Cycle[rune]
	lineStyle  runes.LineStyle
}

// NewColony validates cfg eagerly and returns an immutable Colony. Any
// invalid field fails construction; no half-initialized colony is ever
// observable.
func NewColony(cfg Config) (*Colony, error) {
	c := &Colony{
		cellWidth:  cfg.CellWidth,
		cellHeight: cfg.CellHeight,
		lineStyle:  runes.ThinLineStyle,
	}
	if c.cellWidth <= 0 {
		c.cellWidth = DefaultCellWidth
	}
	if c.cellHeight <= 0 {
		c.cellHeight = DefaultCellHeight
	}

	var err error
	if cfg.FontSize == nil {
		cfg.FontSize = params.DefaultFontSize()
	}
	if c.fontSize, err = params.ValidateFontSize(cfg.FontSize); err != nil {
		return nil, pkgerrors.Wrap(err, "colony font size")
	}

	if cfg.Despine == nil {
		cfg.Despine = "tr"
	}
	if c.despine, err = params.ValidateDespine(cfg.Despine); err != nil {
		return nil, pkgerrors.Wrap(err, "colony despine")
	}

	if cfg.Legend == nil {
		cfg.Legend = params.DefaultLegend()
	}
	if c.legend, err = params.ValidateLegend(cfg.Legend); err != nil {
		return nil, pkgerrors.Wrap(err, "colony legend")
	}

	if cfg.Palette == nil {
		cfg.Palette = palette.Cozy
	}
	if c.palette, err = palette.Resolve(cfg.Palette); err != nil {
		return nil, pkgerrors.Wrap(err, "colony palette")
	}

	if cfg.Markers == nil {
		cfg.Markers = "simple"
	}
	if c.markers, err = params.ValidateMarkers(cfg.Markers); err != nil {
		return nil, pkgerrors.Wrap(err, "colony markers")
	}

	if cfg.LineStyle != "" {
		if c.lineStyle, err = params.ValidateLineStyle(cfg.LineStyle); err != nil {
			return nil, pkgerrors.Wrap(err, "colony line style")
		}
	}
	return c, nil
}

// MustColony is NewColony for trusted configuration. It panics on error.
func MustColony(cfg Config) *Colony {
	c, err := NewColony(cfg)
	if err != nil {
		panic(fmt.Sprintf("artist: bad colony config: %v", err))
	}
	return c
}

// Artist spawns an artist drawing single charts with this colony's styles.
func (c *Colony) Artist() *Artist { return &Artist{colony: c} }

// MultiArtist spawns an artist that queues charts and renders them as a grid.
func (c *Colony) MultiArtist() *MultiArtist {
	return &MultiArtist{Artist: Artist{colony: c}}
}

// Palette returns the colony's resolved palette.
func (c *Colony) Palette() *palette.Palette { return c.palette }

// FontSize returns the colony's font size record.
func (c *Colony) FontSize() params.FontSize { return c.fontSize }

// Despine returns the colony's despine record.
func (c *Colony) Despine() params.Despine { return c.despine }

// Legend returns the colony's legend record.
func (c *Colony) Legend() params.Legend { return c.legend }

// GridSize returns the total width and height of a grid of chart cells.
func (c *Colony) GridSize(nrows, ncols int) (width, height int) {
	return ncols * c.cellWidth, nrows * c.cellHeight
}
