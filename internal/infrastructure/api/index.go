package api

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Hair Analysis</title>
<style>
  body { font-family: 'Segoe UI', Arial, sans-serif; background: #f4f6f8; margin: 0; padding: 24px; }
  .container { max-width: 760px; margin: 0 auto; background: #fff; border-radius: 8px; padding: 24px; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
  h1 { color: #2c5f7c; margin-top: 0; }
  label { display: block; margin: 12px 0 4px; font-weight: 600; }
  input[type="file"], input[type="text"], select { width: 100%; padding: 6px; box-sizing: border-box; }
  button { margin-top: 16px; background: #2c5f7c; color: #fff; border: none; padding: 10px 24px; border-radius: 4px; cursor: pointer; font-size: 15px; }
  button:disabled { background: #9bb4c2; }
  .result { margin-top: 24px; padding: 16px; background: #f8f9fa; border-left: 4px solid #2c5f7c; white-space: pre-wrap; display: none; }
  .error { border-left-color: #c0392b; color: #c0392b; }
  .hint { color: #667; font-size: 13px; }
</style>
</head>
<body>
<div class="container">
  <h1>Hair Analysis</h1>
  <p class="hint">Upload one to four scalp or hair photos. A single photo gets a full analysis; several photos get a comparative one.</p>
  <form id="analyzeForm">
    <label>Photo 1</label><input type="file" name="image1" accept="image/*" required>
    <label>Photo 2 (optional)</label><input type="file" name="image2" accept="image/*">
    <label>Photo 3 (optional)</label><input type="file" name="image3" accept="image/*">
    <label>Photo 4 (optional)</label><input type="file" name="image4" accept="image/*">
    <button type="submit" id="submitBtn">Analyze</button>
  </form>
  <div id="result" class="result"></div>
</div>
<script>
const form = document.getElementById('analyzeForm');
const result = document.getElementById('result');
const btn = document.getElementById('submitBtn');

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  btn.disabled = true;
  btn.textContent = 'Analyzing...';
  result.style.display = 'none';
  result.classList.remove('error');
  try {
    const resp = await fetch('/analyze', { method: 'POST', body: new FormData(form) });
    const data = await resp.json();
    if (!resp.ok) throw new Error(data.error || 'analysis failed');
    let text = data.analysis;
    if (data.advice) text += '\n\n--- Advice ---\n\n' + data.advice;
    result.textContent = text;
  } catch (err) {
    result.classList.add('error');
    result.textContent = err.message;
  }
  result.style.display = 'block';
  btn.disabled = false;
  btn.textContent = 'Analyze';
});
</script>
</body>
</html>
`
