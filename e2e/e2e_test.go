package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ayusman/samvaad/internal/app"
	"github.com/ayusman/samvaad/internal/composer"
	"github.com/ayusman/samvaad/internal/composer/groq"
	"github.com/ayusman/samvaad/internal/gesture"
	"github.com/ayusman/samvaad/internal/history"
	"github.com/ayusman/samvaad/internal/recognizer"
	"github.com/ayusman/samvaad/internal/server"
	"github.com/ayusman/samvaad/internal/server/api"
	"github.com/ayusman/samvaad/internal/translate"
	"github.com/ayusman/samvaad/testdata"
)

// fakeGroq answers chat completions with a sentence naming the prompt it saw.
func fakeGroq(t *testing.T, fail *atomic.Bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`))
			return
		}

		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		sentence := "Hello there."
		if len(req.Messages) == 1 && strings.Contains(req.Messages[0].Content, "'Thank you'") {
			sentence = "Hello, thank you very much."
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"c1","object":"chat.completion","created":1,"model":"llama-3.1-8b-instant",`+
			`"choices":[{"index":0,"message":{"role":"assistant","content":%q},"finish_reason":"stop","logprobs":null}]}`,
			"  "+sentence+"\n")
	}))
}

// fakeTranslate answers translate_a/single with a fixed dictionary.
func fakeTranslate(t *testing.T) *httptest.Server {
	t.Helper()
	dictionary := map[string]string{
		"Hello":                       "नमस्ते",
		"Hello there.":                "नमस्ते।",
		"Hello, thank you very much.": "नमस्ते, बहुत-बहुत धन्यवाद।",
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		out, ok := dictionary[q]
		if !ok {
			http.Error(w, "unknown phrase", http.StatusBadRequest)
			return
		}
		body, _ := json.Marshal([]any{[]any{[]any{out, q, nil, nil, 10}}, nil, r.URL.Query().Get("sl")})
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
}

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	var groqDown atomic.Bool
	llm := fakeGroq(t, &groqDown)
	defer llm.Close()
	gt := fakeTranslate(t)
	defer gt.Close()

	mock := recognizer.NewMockRecognizer()
	mock.SetCategories(recognizer.Category{Name: "Open_Palm", Score: 0.93})

	buffer := history.New(history.DefaultCapacity)
	service := app.New(app.Config{
		Classifier: gesture.NewClassifier(mock, nil),
		Composer: composer.New(buffer, groq.New(groq.Config{
			APIKey:  "gsk-test",
			BaseURL: llm.URL,
		})),
		Translator: translate.NewGoogle(translate.GoogleConfig{BaseURL: gt.URL}),
	})

	srv := server.New(server.Config{Pipeline: service, AllowedOrigins: []string{"*"}})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()
	image, err := testdata.TwoPixelBase64()
	if err != nil {
		t.Fatalf("build image: %v", err)
	}

	post := func(t *testing.T, path, body string) *http.Response {
		t.Helper()
		resp, err := client.Post(ts.URL+path, "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s error = %v", path, err)
		}
		return resp
	}

	t.Run("Predict", func(t *testing.T) {
		resp := post(t, "/predict", `{"image":"`+image+`"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var got api.PredictResponse
		json.NewDecoder(resp.Body).Decode(&got)
		want := api.PredictResponse{Gesture: "Hello", TranslationEN: "Hello", TranslationHI: "नमस्ते"}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("ComposeFirstGesture", func(t *testing.T) {
		resp := post(t, "/context-translate", `{"gesture":"Hello"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var got api.ContextResponse
		json.NewDecoder(resp.Body).Decode(&got)
		if got.EnglishSentence != "Hello there." || got.HindiTranslation != "नमस्ते।" {
			t.Errorf("unexpected response %+v", got)
		}
	})

	t.Run("ComposeSecondGesture", func(t *testing.T) {
		resp := post(t, "/context-translate", `{"gesture":"Thank you"}`)
		defer resp.Body.Close()

		var got api.ContextResponse
		json.NewDecoder(resp.Body).Decode(&got)
		if strings.Join(got.ContextGestures, ",") != "Hello,Thank you" {
			t.Errorf("context = %v", got.ContextGestures)
		}
		if got.HindiTranslation != "नमस्ते, बहुत-बहुत धन्यवाद।" {
			t.Errorf("translation = %q", got.HindiTranslation)
		}
	})

	t.Run("IgnoreNoGesture", func(t *testing.T) {
		resp := post(t, "/context-translate", `{"gesture":"No gesture"}`)
		defer resp.Body.Close()

		var got api.MessageResponse
		json.NewDecoder(resp.Body).Decode(&got)
		if got.Message != "Waiting for valid gesture" {
			t.Errorf("message = %q", got.Message)
		}
		if buffer.Len() != 2 {
			t.Errorf("context length = %d, want 2", buffer.Len())
		}
	})

	t.Run("LanguageModelDown", func(t *testing.T) {
		groqDown.Store(true)
		defer groqDown.Store(false)

		resp := post(t, "/context-translate", `{"gesture":"Yes"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
		}
		var got api.ErrorResponse
		json.NewDecoder(resp.Body).Decode(&got)
		if !strings.Contains(got.Error, composer.ErrCompletion.Error()) {
			t.Errorf("error = %q", got.Error)
		}
		if buffer.Len() != 3 {
			t.Errorf("context length = %d, want 3", buffer.Len())
		}
	})

	t.Run("Health", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/health")
		if err != nil {
			t.Fatalf("GET /health error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})
}
