package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the HTML pages of the app.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index serves the main upload/lookup page.
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// Chat serves the chat page.
func (h *PageHandler) Chat(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(chatHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>KanjiLens</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Hiragino Sans', sans-serif; background: #f5f2eb; min-height: 100vh; padding: 2rem; }
        .container { max-width: 640px; margin: 0 auto; }
        h1 { margin-bottom: 1rem; color: #2c2c2c; }
        .card { background: #fff; border-radius: 8px; padding: 1.5rem; margin-bottom: 1.5rem; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
        button { background: #b5443a; color: #fff; border: none; border-radius: 4px; padding: 0.6rem 1.2rem; cursor: pointer; }
        pre { background: #f8f8f8; padding: 1rem; border-radius: 4px; overflow-x: auto; margin-top: 1rem; }
    </style>
</head>
<body>
    <div class="container">
        <h1>KanjiLens 漢字レンズ</h1>
        <div class="card">
            <h2>画像をアップロード</h2>
            <form id="upload-form">
                <input type="file" name="image" accept="image/*" required>
                <button type="submit">認識する</button>
            </form>
            <pre id="upload-result" hidden></pre>
        </div>
        <div class="card">
            <h2>辞書を調べる</h2>
            <input id="term" placeholder="漢字・単語">
            <button id="lookup-btn">検索</button>
            <pre id="lookup-result" hidden></pre>
        </div>
    </div>
    <script>
        document.getElementById('upload-form').addEventListener('submit', async (e) => {
            e.preventDefault();
            const res = await fetch('/api/upload', { method: 'POST', body: new FormData(e.target) });
            const out = document.getElementById('upload-result');
            out.hidden = false;
            out.textContent = JSON.stringify(await res.json(), null, 2);
        });
        document.getElementById('lookup-btn').addEventListener('click', async () => {
            const term = document.getElementById('term').value;
            if (!term) return;
            const res = await fetch('/api/lookup/' + encodeURIComponent(term));
            const out = document.getElementById('lookup-result');
            out.hidden = false;
            out.textContent = JSON.stringify(await res.json(), null, 2);
        });
    </script>
</body>
</html>`

const chatHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>KanjiLens Chat</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Hiragino Sans', sans-serif; background: #f5f2eb; min-height: 100vh; padding: 2rem; }
        .container { max-width: 640px; margin: 0 auto; }
        #log { background: #fff; border-radius: 8px; padding: 1rem; min-height: 240px; margin-bottom: 1rem; }
        .msg { margin-bottom: 0.5rem; }
        .me { color: #2c5f8a; }
        .bot { color: #b5443a; }
        input { width: 75%; padding: 0.5rem; }
        button { background: #b5443a; color: #fff; border: none; border-radius: 4px; padding: 0.5rem 1rem; cursor: pointer; }
    </style>
</head>
<body>
    <div class="container">
        <h1>チャット</h1>
        <div id="log"></div>
        <input id="message" placeholder="メッセージを入力">
        <button id="send">送信</button>
    </div>
    <script>
        const log = document.getElementById('log');
        const add = (cls, text) => {
            const div = document.createElement('div');
            div.className = 'msg ' + cls;
            div.textContent = text;
            log.appendChild(div);
        };
        document.getElementById('send').addEventListener('click', async () => {
            const input = document.getElementById('message');
            const message = input.value.trim();
            if (!message) return;
            add('me', message);
            input.value = '';
            const res = await fetch('/api/chat', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ message })
            });
            const body = await res.json();
            add('bot', body.response || body.error);
        });
    </script>
</body>
</html>`
