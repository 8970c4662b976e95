package https_server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kama_card_server/internal/config"
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/handler"
	"kama_card_server/internal/https_server"
	"kama_card_server/internal/service"
	"kama_card_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type stubUserService struct{}

type stubCardService struct{}

type stubVcfService struct {
	importErr error
}

type stubConnectionService struct{}

type stubContentService struct{}

func (stubUserService) CreateUser(req request.CreateUserRequest) (*respond.UserInfoRespond, error) {
	return &respond.UserInfoRespond{Uuid: "U_TEST", Nickname: req.Nickname, CardCount: 1}, nil
}
func (stubUserService) GetUserInfo(uuid string) (*respond.UserInfoRespond, error) {
	return &respond.UserInfoRespond{Uuid: uuid}, nil
}

func (stubCardService) CreateCard(req request.CreateCardRequest) (*respond.CardRespond, error) {
	return &respond.CardRespond{CardId: "C_TEST", OwnerId: req.OwnerId}, nil
}
func (stubCardService) UpdateCard(req request.UpdateCardRequest) (*respond.CardRespond, error) {
	return &respond.CardRespond{CardId: req.CardId}, nil
}
func (stubCardService) GetCardInfo(cardId string) (*respond.CardRespond, error) {
	return &respond.CardRespond{CardId: cardId}, nil
}
func (stubCardService) GetCardList(req request.CardListRequest) (*respond.CardListRespond, error) {
	return &respond.CardListRespond{Page: 1, PageSize: 20, Cards: []respond.CardBriefRespond{}}, nil
}
func (stubCardService) DeleteCard(ownerId, cardId string) error { return nil }

func (s stubVcfService) ImportVcard(req request.ImportVcfRequest) (*respond.ImportRespond, error) {
	rsp := &respond.ImportRespond{BatchId: "1", Imported: 1, CardIds: []string{"C_1"}}
	if s.importErr != nil {
		idx := 1
		rsp.FailedIndex = &idx
		rsp.Message = "could not parse contact 2"
		return rsp, s.importErr
	}
	return rsp, nil
}
func (stubVcfService) ExportVcard(cardId string) (*respond.VcfFile, error) {
	return &respond.VcfFile{FileName: "Jane Doe.vcf", Text: "BEGIN:VCARD\nVERSION:4.0\nFN:Jane Doe\nEND:VCARD\n"}, nil
}
func (stubVcfService) ShareCard(req request.OwnerCardRequest) (*respond.ShareRespond, error) {
	return &respond.ShareRespond{Token: "tok"}, nil
}
func (stubVcfService) GetSharedCard(token, viewerId string) (*respond.SharedCardRespond, error) {
	return &respond.SharedCardRespond{}, nil
}
func (s stubVcfService) ExportSharedVcard(token string) (*respond.VcfFile, error) {
	return s.ExportVcard("C_TEST")
}
func (stubVcfService) SharedQR(token string, size int) ([]byte, error) {
	return []byte("\x89PNG"), nil
}

func (stubConnectionService) Connect(req request.ConnectRequest) (*respond.ConnectionRespond, error) {
	return &respond.ConnectionRespond{ConnectionId: "L_TEST"}, nil
}
func (stubConnectionService) GetConnectionList(ownerId string) ([]respond.ConnectionRespond, error) {
	return []respond.ConnectionRespond{}, nil
}
func (stubConnectionService) GetConnectionInfo(ownerId, connectionId string) (*respond.ConnectionInfoRespond, error) {
	return &respond.ConnectionInfoRespond{ConnectionId: connectionId}, nil
}
func (stubConnectionService) DeleteConnection(ownerId, connectionId string) error { return nil }

func (stubContentService) AddContent(req request.AddContentRequest) (*respond.ContentItemRespond, error) {
	return &respond.ContentItemRespond{ContentId: 1}, nil
}
func (stubContentService) GetContentList(cardId string) ([]respond.ContentItemRespond, error) {
	return []respond.ContentItemRespond{}, nil
}
func (stubContentService) OrderContents(req request.OrderContentRequest) error { return nil }
func (stubContentService) DeleteContent(ownerId string, contentId uint) error  { return nil }

func newServer(t *testing.T, vcf stubVcfService, cfg *config.Config) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svcs := &service.Services{
		User:       stubUserService{},
		Card:       stubCardService{},
		Vcf:        vcf,
		Connection: stubConnectionService{},
		Content:    stubContentService{},
	}
	server := httptest.NewServer(https_server.Init(handler.NewHandlers(svcs), cfg))
	t.Cleanup(server.Close)
	return server
}

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, client *http.Client, method, url string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request %s %s: %v", method, url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) handler.ResponseData {
	t.Helper()
	defer resp.Body.Close()
	var data handler.ResponseData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return data
}

func TestAllHTTPEndpoints_Smoke(t *testing.T) {
	server := newServer(t, stubVcfService{}, config.Default())
	client := &http.Client{Timeout: 5 * time.Second}

	posts := map[string]any{
		"/user/create":         map[string]any{"nickname": "jane"},
		"/card/create":         map[string]any{"owner_id": "U_TEST", "last": "Doe"},
		"/card/update":         map[string]any{"owner_id": "U_TEST", "card_id": "C_TEST", "last": "Doe"},
		"/card/delete":         map[string]any{"owner_id": "U_TEST", "card_id": "C_TEST"},
		"/card/import":         map[string]any{"owner_id": "U_TEST", "vcf": "BEGIN:VCARD\nFN:x\nEND:VCARD\n"},
		"/card/share":          map[string]any{"owner_id": "U_TEST", "card_id": "C_TEST"},
		"/card/content/add":    map[string]any{"owner_id": "U_TEST", "card_id": "C_TEST", "item_kind": "phone", "item_id": 1},
		"/card/content/order":  map[string]any{"owner_id": "U_TEST", "card_id": "C_TEST", "content_ids": []uint{1}},
		"/card/content/delete": map[string]any{"owner_id": "U_TEST", "content_id": 1},
		"/connection/connect":  map[string]any{"owner_id": "U_TEST", "share_token": "tok"},
		"/connection/delete":   map[string]any{"owner_id": "U_TEST", "connection_id": "L_TEST"},
	}
	for path, body := range posts {
		resp := doReq(t, client, http.MethodPost, server.URL+path, mustJSON(t, body))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status=%d", path, resp.StatusCode)
		}
		if data := decodeBody(t, resp); data.Code != errorx.CodeSuccess {
			t.Fatalf("%s code=%d msg=%s", path, data.Code, data.Msg)
		}
	}

	gets := []string{
		"/user/info?user_id=U_TEST",
		"/card/info?card_id=C_TEST",
		"/card/list?owner_id=U_TEST&page=1&page_size=10",
		"/card/content/list?card_id=C_TEST",
		"/connection/list?owner_id=U_TEST",
		"/connection/info?owner_id=U_TEST&connection_id=L_TEST",
		"/share/tok?viewer_id=U_2",
	}
	for _, path := range gets {
		resp := doReq(t, client, http.MethodGet, server.URL+path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status=%d", path, resp.StatusCode)
		}
		if data := decodeBody(t, resp); data.Code != errorx.CodeSuccess {
			t.Fatalf("%s code=%d msg=%s", path, data.Code, data.Msg)
		}
	}

	resp := doReq(t, client, http.MethodGet, server.URL+"/share/tok/qr?size=256", nil)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("qr status=%d type=%s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
}

func TestExportSetsDownloadHeaders(t *testing.T) {
	server := newServer(t, stubVcfService{}, config.Default())
	client := &http.Client{Timeout: 5 * time.Second}

	for _, path := range []string{"/card/export?card_id=C_TEST", "/share/tok/vcf"} {
		resp := doReq(t, client, http.MethodGet, server.URL+path, nil)
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="Jane Doe.vcf"` {
			t.Fatalf("%s Content-Disposition = %q", path, got)
		}
		if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
			t.Fatalf("%s Content-Type = %q", path, resp.Header.Get("Content-Type"))
		}
		if !strings.Contains(string(body), "FN:Jane Doe") {
			t.Fatalf("%s body = %q", path, body)
		}
	}
}

func TestImportPartialKeepsReport(t *testing.T) {
	partial := errorx.New(errorx.CodeImportPartial, "could not parse contact 2")
	server := newServer(t, stubVcfService{importErr: partial}, config.Default())
	client := &http.Client{Timeout: 5 * time.Second}

	resp := doReq(t, client, http.MethodPost, server.URL+"/card/import", mustJSON(t, map[string]any{
		"owner_id": "U_TEST",
		"vcf":      "BEGIN:VCARD\nFN:x\nEND:VCARD\nBEGIN:VCARD\n",
	}))
	data := decodeBody(t, resp)
	if data.Code != errorx.CodeImportPartial {
		t.Fatalf("code = %d", data.Code)
	}
	report, ok := data.Data.(map[string]any)
	if !ok || report["imported"] != float64(1) || report["failed_index"] != float64(1) {
		t.Fatalf("report = %#v", data.Data)
	}
}

func TestParamErrors(t *testing.T) {
	cfg := config.Default()
	cfg.VcardConfig.MaxImportBytes = 16
	server := newServer(t, stubVcfService{}, cfg)
	client := &http.Client{Timeout: 5 * time.Second}

	resp := doReq(t, client, http.MethodPost, server.URL+"/card/create", mustJSON(t, map[string]any{"last": "Doe"}))
	if data := decodeBody(t, resp); data.Code != errorx.CodeInvalidParam {
		t.Fatalf("missing owner_id code = %d", data.Code)
	}

	resp = doReq(t, client, http.MethodGet, server.URL+"/card/info", nil)
	if data := decodeBody(t, resp); data.Code != errorx.CodeInvalidParam {
		t.Fatalf("missing card_id code = %d", data.Code)
	}

	resp = doReq(t, client, http.MethodGet, server.URL+"/share/tok/qr?size=5", nil)
	if data := decodeBody(t, resp); data.Code != errorx.CodeInvalidParam {
		t.Fatalf("tiny qr code = %d", data.Code)
	}

	big := strings.Repeat("NOTE:padding\n", 1000)
	resp = doReq(t, client, http.MethodPost, server.URL+"/card/import", mustJSON(t, map[string]any{
		"owner_id": "U_TEST",
		"vcf":      big,
	}))
	if data := decodeBody(t, resp); data.Code != errorx.CodeVcardTooLarge {
		t.Fatalf("oversized import code = %d", data.Code)
	}
}
