package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/delivery/http/middleware"
	"ehr-backend/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/spf13/afero"
)

type fakeAuthUsecase struct {
	register func(req *dto.RegisterRequest) (*dto.DoctorResponse, error)
	login    func(req *dto.LoginRequest) (*dto.LoginResult, error)
	logout   func(doctorID int64, sessionID string) error
	me       func(doctorID int64) (*dto.MeResponse, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.DoctorResponse, error) {
	return f.register(req)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	return f.login(req)
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, doctorID int64, sessionID string) error {
	return f.logout(doctorID, sessionID)
}

func (f *fakeAuthUsecase) GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.MeResponse, error) {
	return f.me(doctorID)
}

type fakePatientUsecase struct {
	search func(doctorID int64, insuranceNumber string) (*dto.PatientSearchResponse, error)
	verify func(doctorID int64, req *dto.VerifyPatientRequest) (*dto.PatientVerifyResponse, error)
	create func(doctorID int64, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	list   func(doctorID int64, query dto.ListQuery) (*dto.PatientListResponse, error)
	get    func(doctorID, id int64) (*dto.PatientDetailResponse, error)
	update func(doctorID, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	delete func(doctorID, id int64) error
}

func (f *fakePatientUsecase) Search(ctx context.Context, doctorID int64, insuranceNumber string) (*dto.PatientSearchResponse, error) {
	return f.search(doctorID, insuranceNumber)
}

func (f *fakePatientUsecase) Verify(ctx context.Context, doctorID int64, req *dto.VerifyPatientRequest) (*dto.PatientVerifyResponse, error) {
	return f.verify(doctorID, req)
}

func (f *fakePatientUsecase) Create(ctx context.Context, doctorID int64, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return f.create(doctorID, req)
}

func (f *fakePatientUsecase) List(ctx context.Context, doctorID int64, query dto.ListQuery) (*dto.PatientListResponse, error) {
	return f.list(doctorID, query)
}

func (f *fakePatientUsecase) Get(ctx context.Context, doctorID, id int64) (*dto.PatientDetailResponse, error) {
	return f.get(doctorID, id)
}

func (f *fakePatientUsecase) Update(ctx context.Context, doctorID, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return f.update(doctorID, id, req)
}

func (f *fakePatientUsecase) Delete(ctx context.Context, doctorID, id int64) error {
	return f.delete(doctorID, id)
}

type fakeDocumentUsecase struct {
	upload func(doctorID, visitID int64, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error)
	open   func(doctorID int64, storedName string) (afero.File, *entity.Document, error)
}

func (f *fakeDocumentUsecase) Upload(ctx context.Context, doctorID, visitID int64, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
	return f.upload(doctorID, visitID, req)
}

func (f *fakeDocumentUsecase) ListByVisit(ctx context.Context, doctorID, visitID int64) (*dto.DocumentListResponse, error) {
	return &dto.DocumentListResponse{}, nil
}

func (f *fakeDocumentUsecase) Delete(ctx context.Context, doctorID, id int64) error {
	return nil
}

func (f *fakeDocumentUsecase) OpenStoredFile(ctx context.Context, doctorID int64, storedName string) (afero.File, *entity.Document, error) {
	return f.open(doctorID, storedName)
}

type fakeDigestiveUsecase struct {
	save func(doctorID, patientID int64, req *dto.SaveDigestiveRequest) (*dto.DigestiveVisitResponse, error)
}

func (f *fakeDigestiveUsecase) Get(ctx context.Context, doctorID, patientID int64) (*dto.DigestiveVisitResponse, error) {
	return &dto.DigestiveVisitResponse{PatientID: patientID}, nil
}

func (f *fakeDigestiveUsecase) Save(ctx context.Context, doctorID, patientID int64, req *dto.SaveDigestiveRequest) (*dto.DigestiveVisitResponse, error) {
	return f.save(doctorID, patientID, req)
}

type recordingCookies struct {
	set     string
	cleared bool
}

func (c *recordingCookies) SetSessionCookie(w http.ResponseWriter, token string) {
	c.set = token
}

func (c *recordingCookies) ClearSessionCookie(w http.ResponseWriter) {
	c.cleared = true
}

// asDoctor attaches an authenticated doctor and the given path variables to
// the request, the way the router and auth middleware would.
func asDoctor(req *http.Request, doctorID int64, vars map[string]string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.DoctorIDKey, doctorID)
	ctx = context.WithValue(ctx, middleware.SessionIDKey, "session-1")
	req = req.WithContext(ctx)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

type fakeVisitUsecase struct {
	create func(doctorID, patientID int64, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	get    func(doctorID, id int64) (*dto.VisitDetailResponse, error)
	update func(doctorID, id int64, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	delete func(doctorID, id int64) error
}

func (f *fakeVisitUsecase) Create(ctx context.Context, doctorID, patientID int64, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	return f.create(doctorID, patientID, req)
}

func (f *fakeVisitUsecase) ListByPatient(ctx context.Context, doctorID, patientID int64) (*dto.VisitListResponse, error) {
	return &dto.VisitListResponse{}, nil
}

func (f *fakeVisitUsecase) Get(ctx context.Context, doctorID, id int64) (*dto.VisitDetailResponse, error) {
	return f.get(doctorID, id)
}

func (f *fakeVisitUsecase) Update(ctx context.Context, doctorID, id int64, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	return f.update(doctorID, id, req)
}

func (f *fakeVisitUsecase) Delete(ctx context.Context, doctorID, id int64) error {
	return f.delete(doctorID, id)
}

type fakeEHRRecordUsecase struct {
	get  func(doctorID, visitID int64) (*dto.EHRRecordResponse, error)
	save func(doctorID, visitID int64, req *dto.SaveEHRRecordRequest) (*dto.EHRRecordResponse, error)
}

func (f *fakeEHRRecordUsecase) Get(ctx context.Context, doctorID, visitID int64) (*dto.EHRRecordResponse, error) {
	return f.get(doctorID, visitID)
}

func (f *fakeEHRRecordUsecase) Save(ctx context.Context, doctorID, visitID int64, req *dto.SaveEHRRecordRequest) (*dto.EHRRecordResponse, error) {
	return f.save(doctorID, visitID, req)
}

type fakeAuditLogUsecase struct {
	list func(doctorID int64, query dto.ListQuery) ([]dto.AuditLogResponse, int64, error)
}

func (f *fakeAuditLogUsecase) ListForDoctor(ctx context.Context, doctorID int64, query dto.ListQuery) ([]dto.AuditLogResponse, int64, error) {
	return f.list(doctorID, query)
}
