package advisor

const scenePromptTemplate = `Split this chapter into at most %d visual scenes for a webtoon. Keep narrative order.
For each scene provide:
- "text": the scene text (key moment, taken from the chapter)
- "mood": one of tense, peaceful, exciting, sad, happy, mysterious, neutral
- "action_level": one of high, medium, low
- "action_type": one of dialogue, action, description
Return ONLY a JSON array of objects with those fields.

Chapter: %s

JSON:`

const enhancePromptTemplate = `Enhance this image generation prompt for a webtoon panel based on the scene.
Add artistic details, camera angle, lighting and mood. Keep it under 75 words.
Return only the prompt as a single comma separated line.

Scene: %s
Base prompt: %s
Main character: %s

Enhanced prompt:`

const characterPromptTemplate = `Extract the main character information from this text.
Return ONLY a JSON object with these fields: name, gender, age, hair, eyes, outfit, features, vibe.
Use an empty string for anything the text does not state. gender is one of male, female, unknown.

Text: %s

JSON:`
