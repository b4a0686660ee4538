package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/usecase"
	"dental-care-api/pkg/response"
	"dental-care-api/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

// Create handles medicine creation
// @Summary Create a new medicine
// @Description Add a medicine to the inventory
// @Tags Medicines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicineRequest true "Create Medicine Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medicines [post]
func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create medicine")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

// List handles the paginated medicine listing
// @Summary List medicines
// @Description List medicines with pagination, sorting and search
// @Tags Medicines
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page index" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(name)
// @Param sortDirection query string false "Sort direction" default(asc)
// @Param search query string false "Search text"
// @Success 200 {object} response.Response
// @Router /medicines [get]
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.medicineUsecase.List(r.Context(), parsePageQuery(r, "name"))
	if err != nil {
		response.InternalServerError(w, "Failed to list medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", page)
}

// Search handles the unpaginated typeahead search
// @Summary Search medicines
// @Description Search medicines by name, category or ID
// @Tags Medicines
// @Security BearerAuth
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medicines/search [get]
func (h *MedicineHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter is required", nil)
		return
	}

	medicines, err := h.medicineUsecase.Search(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to search medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

// GetByID handles getting a medicine by ID
// @Summary Get medicine by ID
// @Description Get a medicine by its ID
// @Tags Medicines
// @Security BearerAuth
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id} [get]
func (h *MedicineHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	medicine, err := h.medicineUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to get medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

// Update handles medicine update
// @Summary Update a medicine
// @Description Update a medicine by its ID
// @Tags Medicines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Medicine ID"
// @Param request body dto.UpdateMedicineRequest true "Update Medicine Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id} [put]
func (h *MedicineHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

// Delete handles medicine deletion
// @Summary Delete a medicine
// @Description Delete a medicine by its ID
// @Tags Medicines
// @Security BearerAuth
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id} [delete]
func (h *MedicineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	err = h.medicineUsecase.Delete(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}
