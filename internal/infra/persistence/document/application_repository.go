package document

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

const (
	fieldUserID      = "userId"
	fieldName        = "name"
	fieldSubmittedAt = "submittedAt"
	fieldAdminNotes  = "adminNotes"
	fieldProcessedAt = "processedAt"
	fieldProcessedBy = "processedBy"
	fieldProfileSync = "profileSync"
	fieldSyncError   = "syncError"

	fieldCuisine         = "cuisine"
	fieldCategory        = "category"
	fieldDescription     = "description"
	fieldRestaurantPhone = "restaurantPhone"
	fieldWebsite         = "website"
	fieldExperience      = "experience"

	fieldLicenseNumber         = "licenseNumber"
	fieldVehicleModel          = "vehicleModel"
	fieldVehiclePlate          = "vehiclePlate"
	fieldAvailability          = "availability"
	fieldEmergencyContactName  = "emergencyContactName"
	fieldEmergencyContactPhone = "emergencyContactPhone"
)

// applicationRepository implements the repository.ApplicationRepository interface.
type applicationRepository struct {
	store repository.DocumentStore
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(store repository.DocumentStore) repository.ApplicationRepository {
	return &applicationRepository{
		store: store,
	}
}

// Find returns the application or ErrApplicationNotFound.
func (repo *applicationRepository) Find(ctx context.Context, appType entity.ApplicationType, userID string) (*entity.Application, error) {
	doc, err := repo.store.Read(ctx, appType.Collection(), userID)
	if err != nil {
		return nil, storeError(err, repository.ErrApplicationNotFound, "failed to read application")
	}

	return toApplicationDomain(appType, doc), nil
}

// Put overwrites the application document.
func (repo *applicationRepository) Put(ctx context.Context, app *entity.Application) error {
	if err := repo.store.Set(ctx, app.Type.Collection(), app.UserID, fromApplicationDomain(app)); err != nil {
		return storeError(err, repository.ErrApplicationNotFound, "failed to write application")
	}

	return nil
}

// UpdateStatus records a review decision.
func (repo *applicationRepository) UpdateStatus(ctx context.Context, appType entity.ApplicationType, userID string, change *entity.StatusChange) error {
	partial := map[string]any{
		fieldStatus:      string(change.Status),
		fieldProcessedAt: change.At,
		fieldProcessedBy: change.ReviewerID,
		fieldAdminNotes:  change.Notes,
	}

	if err := repo.store.Update(ctx, appType.Collection(), userID, partial); err != nil {
		return storeError(err, repository.ErrApplicationNotFound, "failed to update application status")
	}

	return nil
}

// UpdateProfileSync records the progress of the profile promotion step.
func (repo *applicationRepository) UpdateProfileSync(ctx context.Context, appType entity.ApplicationType, userID string, state entity.ProfileSyncState, syncErr string) error {
	partial := map[string]any{
		fieldProfileSync: string(state),
		fieldSyncError:   syncErr,
	}

	if err := repo.store.Update(ctx, appType.Collection(), userID, partial); err != nil {
		return storeError(err, repository.ErrApplicationNotFound, "failed to update application profile sync")
	}

	return nil
}

// FindByStatus lists applications in a status, most recently submitted first.
func (repo *applicationRepository) FindByStatus(ctx context.Context, appType entity.ApplicationType, status entity.ApplicationStatus) ([]*entity.Application, error) {
	docs, err := repo.store.Query(ctx, appType.Collection(), byStatusQuery(status))
	if err != nil {
		return nil, storeError(err, repository.ErrApplicationNotFound, "failed to list applications")
	}

	return toApplicationsDomain(appType, docs), nil
}

// FindUnsynced lists applications whose profile promotion has not completed, oldest first.
func (repo *applicationRepository) FindUnsynced(ctx context.Context, appType entity.ApplicationType, limit int) ([]*entity.Application, error) {
	q := entity.Query{}.
		Where(fieldProfileSync, string(entity.ProfileSyncPending)).
		Ordered(fieldSubmittedAt, entity.SortAscending).
		Limited(limit)

	docs, err := repo.store.Query(ctx, appType.Collection(), q)
	if err != nil {
		return nil, storeError(err, repository.ErrApplicationNotFound, "failed to list unsynced applications")
	}

	return toApplicationsDomain(appType, docs), nil
}

// Watch delivers the application now and after every change, nil when absent.
func (repo *applicationRepository) Watch(ctx context.Context, appType entity.ApplicationType, userID string, handler func(*entity.Application)) (repository.Subscription, error) {
	sub, err := repo.store.SubscribeDocument(ctx, appType.Collection(), userID, func(doc *entity.Document) {
		handler(toApplicationDomain(appType, doc))
	})
	if err != nil {
		return nil, storeError(err, repository.ErrApplicationNotFound, "failed to watch application")
	}

	return sub, nil
}

// WatchByStatus delivers the applications in a status now and after every change to that set.
func (repo *applicationRepository) WatchByStatus(ctx context.Context, appType entity.ApplicationType, status entity.ApplicationStatus, handler func([]*entity.Application)) (repository.Subscription, error) {
	sub, err := repo.store.Subscribe(ctx, appType.Collection(), byStatusQuery(status), func(docs []*entity.Document) {
		handler(toApplicationsDomain(appType, docs))
	})
	if err != nil {
		return nil, storeError(err, repository.ErrApplicationNotFound, "failed to watch applications")
	}

	return sub, nil
}

func byStatusQuery(status entity.ApplicationStatus) entity.Query {
	return entity.Query{}.
		Where(fieldStatus, string(status)).
		Ordered(fieldSubmittedAt, entity.SortDescending)
}

// --- Mapper Functions ---

func toApplicationsDomain(appType entity.ApplicationType, docs []*entity.Document) []*entity.Application {
	apps := make([]*entity.Application, 0, len(docs))
	for _, doc := range docs {
		apps = append(apps, toApplicationDomain(appType, doc))
	}

	return apps
}

// toApplicationDomain converts a stored document to a domain Application entity.
func toApplicationDomain(appType entity.ApplicationType, doc *entity.Document) *entity.Application {
	if doc == nil {
		return nil
	}
	data := doc.Data

	app := &entity.Application{
		UserID: doc.ID,
		Type:   appType,
		Status: entity.ApplicationStatus(stringField(data, fieldStatus)),
		Applicant: entity.Applicant{
			Name:  stringField(data, fieldName),
			Email: stringField(data, fieldEmail),
			Phone: stringField(data, fieldPhone),
		},
		SubmittedAt: timeField(data, fieldSubmittedAt),
		AdminNotes:  stringField(data, fieldAdminNotes),
		ProcessedAt: optionalTimeField(data, fieldProcessedAt),
		ProcessedBy: stringField(data, fieldProcessedBy),
		ProfileSync: entity.ProfileSyncState(stringField(data, fieldProfileSync)),
		SyncError:   stringField(data, fieldSyncError),
	}

	// Documents written before the saga field existed have completed promotion.
	if app.ProfileSync == "" {
		app.ProfileSync = entity.ProfileSyncDone
	}

	switch appType {
	case entity.ApplicationTypeRestaurant:
		app.Restaurant = &entity.RestaurantDetails{
			RestaurantName: stringField(data, fieldRestaurantName),
			Cuisine:        stringField(data, fieldCuisine),
			Category:       stringField(data, fieldCategory),
			Description:    stringField(data, fieldDescription),
			Address:        stringField(data, fieldAddress),
			Phone:          stringField(data, fieldRestaurantPhone),
			Website:        stringField(data, fieldWebsite),
			Experience:     stringField(data, fieldExperience),
		}
	case entity.ApplicationTypeDelivery:
		app.Delivery = &entity.DeliveryDetails{
			LicenseNumber:         stringField(data, fieldLicenseNumber),
			VehicleType:           stringField(data, fieldVehicleType),
			VehicleModel:          stringField(data, fieldVehicleModel),
			VehiclePlate:          stringField(data, fieldVehiclePlate),
			Availability:          stringField(data, fieldAvailability),
			EmergencyContactName:  stringField(data, fieldEmergencyContactName),
			EmergencyContactPhone: stringField(data, fieldEmergencyContactPhone),
			Experience:            stringField(data, fieldExperience),
		}
	}

	return app
}

// fromApplicationDomain converts a domain Application entity to a flat document payload.
func fromApplicationDomain(app *entity.Application) map[string]any {
	data := map[string]any{
		fieldUserID:      app.UserID,
		fieldName:        app.Applicant.Name,
		fieldEmail:       app.Applicant.Email,
		fieldPhone:       app.Applicant.Phone,
		fieldStatus:      string(app.Status),
		fieldSubmittedAt: app.SubmittedAt,
		fieldAdminNotes:  app.AdminNotes,
		fieldProfileSync: string(app.ProfileSync),
	}
	if app.ProcessedAt != nil {
		data[fieldProcessedAt] = *app.ProcessedAt
		data[fieldProcessedBy] = app.ProcessedBy
	}
	if app.SyncError != "" {
		data[fieldSyncError] = app.SyncError
	}

	if details := app.Restaurant; details != nil {
		data[fieldRestaurantName] = details.RestaurantName
		data[fieldCuisine] = details.Cuisine
		data[fieldCategory] = details.Category
		data[fieldDescription] = details.Description
		data[fieldAddress] = details.Address
		data[fieldRestaurantPhone] = details.Phone
		data[fieldWebsite] = details.Website
		data[fieldExperience] = details.Experience
	}
	if details := app.Delivery; details != nil {
		data[fieldLicenseNumber] = details.LicenseNumber
		data[fieldVehicleType] = details.VehicleType
		data[fieldVehicleModel] = details.VehicleModel
		data[fieldVehiclePlate] = details.VehiclePlate
		data[fieldAvailability] = details.Availability
		data[fieldEmergencyContactName] = details.EmergencyContactName
		data[fieldEmergencyContactPhone] = details.EmergencyContactPhone
		data[fieldExperience] = details.Experience
	}

	return data
}
