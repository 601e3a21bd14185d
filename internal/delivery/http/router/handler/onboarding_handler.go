package handler

import (
	"io"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxLogoBytes caps the accepted logo upload size.
const maxLogoBytes = 5 << 20

// OnboardingHandler drives the merchant onboarding wizard over HTTP.
// Every command returns the resulting wizard snapshot so the client never
// has to guess the step it landed on.
type OnboardingHandler struct {
	onboarding usecase.OnboardingUsecase
	logger     *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler, injected by Fx.
func NewOnboardingHandler(onboarding usecase.OnboardingUsecase, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		onboarding: onboarding,
		logger:     logger,
	}
}

// LocationDTO is the wire form of a captured coordinate pair.
type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FormResponse is the wire form of the wizard's draft form. The logo bytes
// stay server-side; clients only learn whether a photo is attached.
type FormResponse struct {
	ShopName       string       `json:"shopName"`
	Categories     []string     `json:"categories"`
	OtherCategory  string       `json:"otherCategory,omitempty"`
	Location       *LocationDTO `json:"location,omitempty"`
	Address        string       `json:"address,omitempty"`
	AddressDetails string       `json:"addressDetails,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Email          string       `json:"email,omitempty"`
	UPIID          string       `json:"upiId,omitempty"`
	HasPhoto       bool         `json:"hasPhoto"`
}

// WizardStateResponse is the snapshot returned after every wizard command.
type WizardStateResponse struct {
	Step           int                `json:"step"`
	StepName       string             `json:"stepName"`
	Form           FormResponse       `json:"form"`
	FieldErrors    entity.FieldErrors `json:"fieldErrors"`
	LocatedAddress string             `json:"locatedAddress,omitempty"`
}

func toWizardStateResponse(state *usecase.WizardState) *WizardStateResponse {
	if state == nil {
		return nil
	}

	form := FormResponse{
		ShopName:       state.Form.ShopName,
		Categories:     state.Form.Categories,
		OtherCategory:  state.Form.OtherCategory,
		Address:        state.Form.Address,
		AddressDetails: state.Form.AddressDetails,
		Phone:          state.Form.Phone,
		Email:          state.Form.Email,
		UPIID:          state.Form.UPIID,
		HasPhoto:       len(state.Form.Photo) > 0,
	}
	if state.Form.Location != nil {
		form.Location = &LocationDTO{
			Latitude:  state.Form.Location.Lat(),
			Longitude: state.Form.Location.Lon(),
		}
	}

	return &WizardStateResponse{
		Step:           int(state.Step),
		StepName:       state.Step.String(),
		Form:           form,
		FieldErrors:    state.FieldErrors,
		LocatedAddress: state.LocatedAddress,
	}
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrSessionRequired)
	}

	return userID, nil
}

// Mount creates the wizard for the authenticated user, or returns the
// existing one with its form intact.
func (h *OnboardingHandler) Mount(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	state, err := h.onboarding.Mount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWizardStateResponse(state), "Wizard mounted")
}

// Teardown discards the wizard and cancels any in-flight location assist.
func (h *OnboardingHandler) Teardown(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.onboarding.Teardown(userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wizard discarded")
}

// State returns the current wizard snapshot.
func (h *OnboardingHandler) State(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	state, err := h.onboarding.State(userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWizardStateResponse(state), "Wizard state retrieved")
}

// UpdateFormRequest carries partial form updates. Absent fields are left
// untouched, so each wizard screen submits only what it owns.
type UpdateFormRequest struct {
	ShopName       *string  `json:"shopName"`
	Categories     []string `json:"categories"`
	OtherCategory  *string  `json:"otherCategory"`
	Address        *string  `json:"address"`
	AddressDetails *string  `json:"addressDetails"`
	Phone          *string  `json:"phone"`
	Email          *string  `json:"email"`
	UPIID          *string  `json:"upiId"`
}

// UpdateForm applies partial form updates to the wizard draft.
func (h *OnboardingHandler) UpdateForm(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateFormRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid form input")
	}

	state, err := h.onboarding.UpdateForm(userID, usecase.UpdateFormInput{
		ShopName:       req.ShopName,
		Categories:     req.Categories,
		OtherCategory:  req.OtherCategory,
		Address:        req.Address,
		AddressDetails: req.AddressDetails,
		Phone:          req.Phone,
		Email:          req.Email,
		UPIID:          req.UPIID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWizardStateResponse(state), "Form updated")
}

// NextStep advances the wizard. A step-1 gate violation is not an error:
// the snapshot comes back with the step unchanged and the field errors set.
func (h *OnboardingHandler) NextStep(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	state, err := h.onboarding.NextStep(userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWizardStateResponse(state), "Step advanced")
}

// PrevStep moves the wizard one step back.
func (h *OnboardingHandler) PrevStep(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	state, err := h.onboarding.PrevStep(userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWizardStateResponse(state), "Step reverted")
}

// Locate runs the location assist for the wizard.
func (h *OnboardingHandler) Locate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	state, err := h.onboarding.Locate(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWizardStateResponse(state), "Location captured")
}

// AttachPhoto stores the uploaded logo preview in the wizard form. The file
// arrives as the multipart field "photo"; nothing is uploaded to blob storage
// until Launch.
func (h *OnboardingHandler) AttachPhoto(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing photo upload")
	}
	if fileHeader.Size > maxLogoBytes {
		return response.BadRequest(c, "PAYLOAD_TOO_LARGE", "Photo exceeds the 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes))
	if err != nil {
		return errors.WithStack(err)
	}

	state, err := h.onboarding.AttachPhoto(userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWizardStateResponse(state), "Photo attached")
}

// LaunchResponse is the wire form of a launch result.
type LaunchResponse struct {
	Outcome string        `json:"outcome"`
	Shop    *ShopResponse `json:"shop,omitempty"`
}

// Launch runs the two-write storefront launch from step 3.
func (h *OnboardingHandler) Launch(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := h.onboarding.Launch(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LaunchResponse{
		Outcome: string(result.Outcome),
		Shop:    toShopResponse(result.Shop),
	}, "Launch completed")
}
