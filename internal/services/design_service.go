package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

// DesignService persists user designs, enforces the door/rod selection
// rule and resolves designs into ordered layer stacks.
type DesignService struct {
	designRepo     DesignStore
	showerTypeRepo ShowerTypeStore
	productRepo    ProductStore
	variantRepo    VariantStore
	drafts         DraftStore
}

func NewDesignService(
	designRepo DesignStore,
	showerTypeRepo ShowerTypeStore,
	productRepo ProductStore,
	variantRepo VariantStore,
	drafts DraftStore,
) *DesignService {
	return &DesignService{
		designRepo:     designRepo,
		showerTypeRepo: showerTypeRepo,
		productRepo:    productRepo,
		variantRepo:    variantRepo,
		drafts:         drafts,
	}
}

type SelectionRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
}

type DesignRequest struct {
	Name           string                `json:"name" binding:"required"`
	ShowerTypeID   uuid.UUID             `json:"shower_type_id" binding:"required"`
	PlumbingConfig models.PlumbingConfig `json:"plumbing_config"`
	Selections     []SelectionRequest    `json:"selections"`
}

func (s *DesignService) CreateDesign(userID *uuid.UUID, req DesignRequest) (*models.Design, error) {
	if req.PlumbingConfig != "" && !req.PlumbingConfig.Valid() {
		return nil, fmt.Errorf("%w: plumbing_config must be LEFT, RIGHT or BOTH", ErrValidation)
	}

	st, err := s.showerTypeRepo.GetByID(req.ShowerTypeID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: shower type", ErrNotFound)
	}

	selections, err := s.resolveSelections(req.Selections)
	if err != nil {
		return nil, err
	}

	d := &models.Design{
		UserID:         userID,
		Name:           req.Name,
		ShowerTypeID:   req.ShowerTypeID,
		PlumbingConfig: req.PlumbingConfig,
		Selections:     selections,
	}

	if err := s.designRepo.Create(d); err != nil {
		return nil, fmt.Errorf("failed to save design: %w", err)
	}
	return d, nil
}

func (s *DesignService) GetDesign(id uuid.UUID) (*models.Design, error) {
	d, err := s.designRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: design", ErrNotFound)
	}
	return d, nil
}

func (s *DesignService) ListDesigns(userID *uuid.UUID) ([]models.Design, error) {
	return s.designRepo.List(userID)
}

func (s *DesignService) UpdateDesign(userID *uuid.UUID, id uuid.UUID, req DesignRequest) (*models.Design, error) {
	if req.PlumbingConfig != "" && !req.PlumbingConfig.Valid() {
		return nil, fmt.Errorf("%w: plumbing_config must be LEFT, RIGHT or BOTH", ErrValidation)
	}

	d, err := s.GetDesign(id)
	if err != nil {
		return nil, err
	}
	if err := checkDesignOwnership(d, userID); err != nil {
		return nil, err
	}

	selections, err := s.resolveSelections(req.Selections)
	if err != nil {
		return nil, err
	}

	d.Name = req.Name
	if req.PlumbingConfig != "" {
		d.PlumbingConfig = req.PlumbingConfig
	}
	d.Selections = selections

	if err := s.designRepo.Update(d); err != nil {
		return nil, fmt.Errorf("failed to update design: %w", err)
	}
	return d, nil
}

func (s *DesignService) DeleteDesign(userID *uuid.UUID, id uuid.UUID) error {
	d, err := s.GetDesign(id)
	if err != nil {
		return err
	}
	if err := checkDesignOwnership(d, userID); err != nil {
		return err
	}
	return s.designRepo.Delete(id)
}

// checkDesignOwnership guards writes to owned designs: once a design is
// saved under an account, only that account may change it. Anonymous
// designs stay writable by anyone holding the ID.
func checkDesignOwnership(d *models.Design, userID *uuid.UUID) error {
	if d.UserID == nil {
		return nil
	}
	if userID == nil || *userID != *d.UserID {
		return fmt.Errorf("%w: design belongs to another user", ErrForbidden)
	}
	return nil
}

// resolveSelections validates each selection against the catalog and
// applies the door/rod exclusivity rule.
func (s *DesignService) resolveSelections(reqs []SelectionRequest) ([]models.DesignSelection, error) {
	var selections []models.DesignSelection
	names := make(map[uuid.UUID]string)

	for _, req := range reqs {
		v, err := s.variantRepo.GetByID(req.VariantID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("%w: variant %s", ErrNotFound, req.VariantID)
		}
		if v.ProductID != req.ProductID {
			return nil, fmt.Errorf("%w: variant %s does not belong to product %s", ErrValidation, req.VariantID, req.ProductID)
		}

		if _, ok := names[req.ProductID]; !ok {
			p, err := s.productRepo.GetByID(req.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, req.ProductID)
			}
			names[req.ProductID] = p.Name
		}

		selections = append(selections, models.DesignSelection{
			ProductID: req.ProductID,
			VariantID: req.VariantID,
		})
	}

	return NormalizeSelections(selections, names), nil
}

// NormalizeSelections enforces two rules over a selection list, keeping
// payload order: a product appears at most once (the later pick wins),
// and a door and a shower rod can never be selected together (the later
// of the two wins, matching the configurator's toggle behavior).
func NormalizeSelections(selections []models.DesignSelection, productNames map[uuid.UUID]string) []models.DesignSelection {
	// Last pick per product wins.
	lastIndex := make(map[uuid.UUID]int)
	for i, sel := range selections {
		lastIndex[sel.ProductID] = i
	}

	var deduped []models.DesignSelection
	for i, sel := range selections {
		if lastIndex[sel.ProductID] == i {
			deduped = append(deduped, sel)
		}
	}

	// Find the last door-or-rod pick; every earlier one drops out.
	lastExclusive := -1
	for i, sel := range deduped {
		if isDoorOrRod(productNames[sel.ProductID]) {
			lastExclusive = i
		}
	}
	if lastExclusive < 0 {
		return deduped
	}

	var result []models.DesignSelection
	for i, sel := range deduped {
		if i != lastExclusive && isDoorOrRod(productNames[sel.ProductID]) {
			continue
		}
		result = append(result, sel)
	}
	return result
}

func isDoorOrRod(productName string) bool {
	name := strings.ToLower(productName)
	return strings.Contains(name, "door") || strings.Contains(name, "rod")
}

// --- layer resolution ---

// ResolveLayers turns a saved design into the ordered image stack the
// client composites over the shower type's base image, bottom-first.
func (s *DesignService) ResolveLayers(id uuid.UUID) ([]models.DesignLayer, error) {
	d, err := s.GetDesign(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.designRepo.GetLayerRows(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load layer rows: %w", err)
	}

	return ResolveLayerStack(rows, d.PlumbingConfig), nil
}

// ResolveLayerStack orders layer rows by effective z-index and picks the
// image for the given plumbing side, mirroring when only the opposite
// side's render exists.
func ResolveLayerStack(rows []models.LayerRow, side models.PlumbingConfig) []models.DesignLayer {
	layers := make([]models.DesignLayer, 0, len(rows))

	for _, row := range rows {
		imageURL, needsMirror := row.Variant.SideImageURL(side)
		if needsMirror {
			imageURL = utils.MirrorImageURL(imageURL)
		}

		layers = append(layers, models.DesignLayer{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			VariantID:   row.Variant.ID,
			ColorName:   row.Variant.ColorName,
			ImageURL:    imageURL,
			Mirrored:    needsMirror,
			ZIndex:      EffectiveZIndex(row),
		})
	}

	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].ZIndex < layers[j].ZIndex
	})

	return layers
}

// --- anonymous drafts ---

// SaveDraft stores the configurator's in-progress state under an opaque
// token with a TTL. An empty token starts a new draft.
func (s *DesignService) SaveDraft(ctx context.Context, token string, payload string) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("%w: draft payload cannot be empty", ErrValidation)
	}

	if token == "" {
		var err error
		token, err = utils.GenerateDraftToken()
		if err != nil {
			return "", err
		}
	}

	if err := s.drafts.StoreDraft(ctx, token, payload); err != nil {
		return "", fmt.Errorf("failed to store draft: %w", err)
	}
	return token, nil
}

func (s *DesignService) GetDraft(ctx context.Context, token string) (string, error) {
	payload, err := s.drafts.GetDraft(ctx, token)
	if err != nil {
		return "", err
	}
	if payload == "" {
		return "", fmt.Errorf("%w: draft", ErrNotFound)
	}
	return payload, nil
}

func (s *DesignService) DeleteDraft(ctx context.Context, token string) error {
	return s.drafts.DeleteDraft(ctx, token)
}

// EffectiveZIndex resolves a row's stacking key: the product's own
// z-index when set, else the subcategory's, else the category's, plus a
// sub-integer offset derived from the product ID so products sharing a
// base value stack deterministically.
func EffectiveZIndex(row models.LayerRow) float64 {
	base := row.CategoryZIndex
	if row.SubcategoryZIndex != nil {
		base = *row.SubcategoryZIndex
	}
	if row.ProductZIndex != nil {
		base = *row.ProductZIndex
	}

	id := row.ProductID
	frac := float64(binary.BigEndian.Uint32(id[:4])) / (1 << 32)

	return float64(base) + frac
}
